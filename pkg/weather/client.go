package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

type Options struct {
	Endpoint   string // Open-Meteo base URL
	GeoIP      string // ip-api base URL
	Timeout    time.Duration
	CacheSize  int
	CacheTTL   time.Duration
	DefaultLat float64
	DefaultLon float64
}

type Client struct {
	opts  Options
	httpc *http.Client
	cache *expirable.LRU[string, Reading]
	log   *zap.Logger
}

func New(opts Options, log *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	opts.Endpoint = strings.TrimRight(opts.Endpoint, "/")
	opts.GeoIP = strings.TrimRight(opts.GeoIP, "/")
	return &Client{
		opts:  opts,
		httpc: &http.Client{Timeout: opts.Timeout},
		cache: expirable.NewLRU[string, Reading](opts.CacheSize, nil, opts.CacheTTL),
		log:   log.Named("weather"),
	}
}

// Lookup never fails: missing coordinates are resolved from the caller's IP
// (then the configured default), and a failed forecast call degrades to a
// latitude-based estimate.
func (c *Client) Lookup(ctx context.Context, lat, lon *float64) Reading {
	var la, lo float64
	if lat != nil && lon != nil {
		la, lo = *lat, *lon
	} else {
		la, lo = c.locate(ctx)
	}
	if !finite(la) || !finite(lo) {
		return DefaultReading()
	}

	// nearby points share an entry; the reading still reports the caller's coordinates
	key := fmt.Sprintf("%.2f,%.2f", la, lo)
	if r, ok := c.cache.Get(key); ok {
		r.Latitude, r.Longitude = la, lo
		return r
	}

	r, err := c.current(ctx, la, lo)
	if err != nil {
		c.log.Warn("forecast unavailable, estimating from latitude", zap.Float64("lat", la), zap.Error(err))
		return EstimateFromLatitude(la, lo)
	}
	c.cache.Add(key, r)
	return r
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func (c *Client) locate(ctx context.Context) (float64, float64) {
	if c.opts.GeoIP != "" {
		var out struct {
			Status string   `json:"status"`
			Lat    *float64 `json:"lat"`
			Lon    *float64 `json:"lon"`
		}
		err := c.getJSON(ctx, c.opts.GeoIP+"/json/", &out)
		if err == nil && out.Lat != nil && out.Lon != nil && out.Status != "fail" {
			return *out.Lat, *out.Lon
		}
		c.log.Debug("ip geolocation failed, using default location", zap.Error(err))
	}
	return c.opts.DefaultLat, c.opts.DefaultLon
}

func (c *Client) current(ctx context.Context, lat, lon float64) (Reading, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprint(lat))
	q.Set("longitude", fmt.Sprint(lon))
	q.Set("current", "temperature_2m,relative_humidity_2m")
	q.Set("hourly", "soil_moisture_0_to_7cm")

	var out struct {
		Current *struct {
			Temperature *float64 `json:"temperature_2m"`
			Humidity    *float64 `json:"relative_humidity_2m"`
		} `json:"current"`
	}
	if err := c.getJSON(ctx, c.opts.Endpoint+"/v1/forecast?"+q.Encode(), &out); err != nil {
		return Reading{}, err
	}
	if out.Current == nil {
		return Reading{}, fmt.Errorf("forecast response has no current block")
	}

	temp, humidity := 25.0, 60.0
	if out.Current.Temperature != nil {
		temp = *out.Current.Temperature
	}
	if out.Current.Humidity != nil {
		humidity = *out.Current.Humidity
	}
	h := round(humidity)
	return Reading{
		Temperature: round(temp),
		Humidity:    h,
		Moisture:    MoistureFromHumidity(h),
		Latitude:    lat,
		Longitude:   lon,
		Source:      SourceOpenMeteo,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", req.URL.Path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
