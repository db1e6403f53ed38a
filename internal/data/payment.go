package data

import (
	"context"
	"net/http"
	"net/url"

	"storefront/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type paymentRepo struct {
	data *Data
	log  *log.Helper
}

// NewPaymentRepo creates a new VNPay payment repository
func NewPaymentRepo(data *Data, logger log.Logger) biz.PaymentRepo {
	return &paymentRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *paymentRepo) CreateVNPayURL(ctx context.Context, bookingID, returnURL string) (*biz.PaymentURL, error) {
	const msg = "Unable to create the VNPay payment URL."

	payload := PaymentPayload{BookingID: bookingID, ReturnURL: returnURL}
	if err := r.data.validate.Struct(payload); err != nil {
		return nil, normalizeError(err, msg)
	}
	res, err := r.data.gw.Invoke(ctx, http.MethodPost, "/payments/vnpay/create", WithBody(payload))
	if err != nil {
		return nil, normalizeError(err, msg)
	}
	var p PaymentURL
	r.data.decode(res, &p, "/payments/vnpay/create")
	return &biz.PaymentURL{
		PaymentURL: p.PaymentURL,
		PaymentID:  string(p.PaymentID),
	}, nil
}

// ConfirmVNPay passes the VNPay return parameters through unchanged so the
// cinema API can verify the secure hash.
func (r *paymentRepo) ConfirmVNPay(ctx context.Context, params url.Values) (*biz.PaymentResult, error) {
	res, err := r.data.gw.Invoke(ctx, http.MethodGet, "/payments/vnpay/callback", WithQuery(params))
	if err != nil {
		return nil, normalizeError(err, "Unable to confirm the payment with the server.")
	}
	var p PaymentResult
	r.data.decode(res, &p, "/payments/vnpay/callback")
	return &biz.PaymentResult{
		Success:          p.Success,
		Status:           p.Status,
		Message:          p.Message,
		BookingID:        string(p.BookingID),
		ConfirmationCode: p.ConfirmationCode,
		TransactionID:    p.TransactionID,
	}, nil
}
