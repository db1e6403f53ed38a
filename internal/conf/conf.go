package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of configs/config.yaml.
type Bootstrap struct {
	Server     *Server     `json:"server"`
	Gateway    *Gateway    `json:"gateway"`
	Data       *Data       `json:"data"`
	Storefront *Storefront `json:"storefront"`
	Log        *Log        `json:"log"`
}

// Server configures the storefront HTTP server.
type Server struct {
	Http *Server_HTTP `json:"http"`
}

type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Gateway configures the client of the cinema API.
type Gateway struct {
	BaseUrl    string    `json:"base_url"`
	Timeout    *Duration `json:"timeout"`
	MaxRetries int32     `json:"max_retries"`
}

// Data configures optional backing services.
type Data struct {
	Redis *Data_Redis `json:"redis"`
}

type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int32     `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
	CacheTtl     *Duration `json:"cache_ttl"`
}

// Storefront configures the movie detail view and checkout defaults.
type Storefront struct {
	ScheduleDays     int32  `json:"schedule_days"`
	TimeZone         string `json:"time_zone"`
	PaymentReturnUrl string `json:"payment_return_url"`
}

type Log struct {
	Level string `json:"level"`
}

// Duration accepts "10s"-style strings or integer nanoseconds.
type Duration struct {
	time.Duration
}

// AsDuration returns zero for a nil receiver so optional fields read naturally.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	case nil:
		d.Duration = 0
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
