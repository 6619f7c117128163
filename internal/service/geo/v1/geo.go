// Package geo provides functionality for resolving a visitor location from external services.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	"github.com/Igbinosa-Christian/scissorapp/internal/service/geo"
)

// Check interface implementation explicitly
var (
	_ geo.Resolver = (*Resolver)(nil)
)

// UnknownLocation is the degradation bucket used whenever either external hop fails.
const UnknownLocation = "Unknown"

type ipEchoResponse struct {
	IP string `json:"ip"`
}

type geoAPIResponse struct {
	City        string `json:"city"`
	CountryName string `json:"countryName"`
}

// Resolver struct defines data structure handling and provides support for adding new implementations.
type Resolver struct {
	log    *zap.Logger
	cfg    *config.GeoConfig
	client *resty.Client
}

// InitResolver initializes a Resolver object with a bounded-timeout HTTP client.
func InitResolver(cfg *config.GeoConfig, logger *zap.Logger) *Resolver {
	client := resty.New()
	client.SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)
	return &Resolver{
		log:    logger,
		cfg:    cfg,
		client: client,
	}
}

// ResolveLocation resolves the visitor's public IP and maps it to a "city, country" pair.
// A failure in either hop degrades to UnknownLocation, it never aborts the caller.
func (r *Resolver) ResolveLocation(ctx context.Context) string {
	ip, err := r.echoIP(ctx)
	if err != nil {
		r.log.Warn("IP echo lookup failed", zap.Error(err))
		return UnknownLocation
	}
	location, err := r.locate(ctx, ip)
	if err != nil {
		r.log.Warn("Geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return UnknownLocation
	}
	return location
}

// echoIP resolves the caller's public IP via the external IP-echo service.
func (r *Resolver) echoIP(ctx context.Context) (string, error) {
	res, err := r.client.R().SetContext(ctx).SetQueryParam("format", "json").Get(r.cfg.IPEchoURL)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("IP echo service replied with status %d", res.StatusCode())
	}
	var body ipEchoResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", err
	}
	if body.IP == "" {
		return "", fmt.Errorf("IP echo service replied with an empty IP")
	}
	return body.IP, nil
}

// locate resolves an IP into a "city, country" pair via the external geolocation service.
func (r *Resolver) locate(ctx context.Context, ip string) (string, error) {
	res, err := r.client.R().SetContext(ctx).Get(r.cfg.GeoAPIURL + "/" + ip)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("geolocation service replied with status %d", res.StatusCode())
	}
	var body geoAPIResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", err
	}
	if body.City == "" && body.CountryName == "" {
		return "", fmt.Errorf("geolocation service replied with an empty location")
	}
	return fmt.Sprintf("%s, %s", body.City, body.CountryName), nil
}
