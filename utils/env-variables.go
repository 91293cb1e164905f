package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"directions-viewer/entities"
	"directions-viewer/mapsurface"
	"directions-viewer/mapview"
)

type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	Route    RouteConfig    `mapstructure:"route"`
	Map      MapConfig      `mapstructure:"map"`
	Render   RenderConfig   `mapstructure:"render"`
	Fetch    FetchConfig    `mapstructure:"fetch"`
	Log      LogConfig      `mapstructure:"log"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Snapshot SnapshotConfig `mapstructure:"snapshot"`
}

type ProviderConfig struct {
	// Name is "google" or "straight".
	Name      string `mapstructure:"name"`
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Geocoding bool   `mapstructure:"geocoding"`
}

type PlaceConfig struct {
	Name string  `mapstructure:"name"`
	Lat  float64 `mapstructure:"lat"`
	Lng  float64 `mapstructure:"lng"`
}

func (p PlaceConfig) Placemark() entities.Placemark {
	return entities.Placemark{Name: p.Name, Coordinate: entities.Coordinate{Lat: p.Lat, Lng: p.Lng}}
}

type RouteConfig struct {
	Source      PlaceConfig `mapstructure:"source"`
	Destination PlaceConfig `mapstructure:"destination"`
	Transport   string      `mapstructure:"transport"`
}

type MapConfig struct {
	CenterLat   float64 `mapstructure:"center_lat"`
	CenterLng   float64 `mapstructure:"center_lng"`
	SpanLat     float64 `mapstructure:"span_lat"`
	SpanLng     float64 `mapstructure:"span_lng"`
	EdgePadding float64 `mapstructure:"edge_padding"`
}

type RenderConfig struct {
	StrokeColor string  `mapstructure:"stroke_color"`
	LineWidth   float64 `mapstructure:"line_width"`
}

type FetchConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type NotifyConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Topic prefix; "-errors" and "-info" are appended. Empty disables.
	Topic string `mapstructure:"topic"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

type SnapshotConfig struct {
	Path   string `mapstructure:"path"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

// LoadConfig reads defaults, an optional config file, a .env file and the
// environment (DIRECTIONS_ROUTE_SOURCE_LAT -> route.source.lat). The
// GOOGLE_MAPS_API_KEY variable is also accepted for the API key.
func LoadConfig(file string) (*Config, error) {
	envFile, _ := godotenv.Read(".env")
	for k, val := range envFile {
		if _, set := os.LookupEnv(k); !set {
			_ = os.Setenv(k, val)
		}
	}

	v := viper.New()

	v.SetDefault("provider.name", "google")
	v.SetDefault("provider.base_url", "")
	v.SetDefault("provider.geocoding", true)
	v.SetDefault("route.source.name", "New York City")
	v.SetDefault("route.source.lat", 40.71)
	v.SetDefault("route.source.lng", -74.00)
	v.SetDefault("route.destination.name", "Boston")
	v.SetDefault("route.destination.lat", 42.36)
	v.SetDefault("route.destination.lng", -71.05)
	v.SetDefault("route.transport", "automobile")
	v.SetDefault("map.center_lat", 40.71)
	v.SetDefault("map.center_lng", -74.00)
	v.SetDefault("map.span_lat", 0.5)
	v.SetDefault("map.span_lng", 0.5)
	v.SetDefault("map.edge_padding", 2)
	v.SetDefault("render.stroke_color", "#0000FF")
	v.SetDefault("render.line_width", 5)
	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "directions.log")
	v.SetDefault("notify.base_url", "https://ntfy.sh/")
	v.SetDefault("notify.topic", "")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("snapshot.path", "")
	v.SetDefault("snapshot.width", 800)
	v.SetDefault("snapshot.height", 600)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // OK if missing
	}

	v.SetEnvPrefix("DIRECTIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("provider.api_key", "DIRECTIONS_PROVIDER_API_KEY", "GOOGLE_MAPS_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	switch c.Provider.Name {
	case "google":
		if c.Provider.APIKey == "" {
			errs = append(errs, "set GOOGLE_MAPS_API_KEY environment variable (or provider.api_key)")
		}
	case "straight":
	default:
		errs = append(errs, fmt.Sprintf("provider.name must be google or straight, got %q", c.Provider.Name))
	}
	if _, err := entities.ParseTransportMode(c.Route.Transport); err != nil {
		errs = append(errs, "route.transport: "+err.Error())
	}
	places := []struct {
		key   string
		place PlaceConfig
	}{{"route.source", c.Route.Source}, {"route.destination", c.Route.Destination}}
	for _, p := range places {
		if p.place.Lat < -90 || p.place.Lat > 90 || p.place.Lng < -180 || p.place.Lng > 180 {
			errs = append(errs, fmt.Sprintf("%s is not a valid coordinate (%f,%f)", p.key, p.place.Lat, p.place.Lng))
		}
	}
	if c.Map.SpanLat <= 0 || c.Map.SpanLng <= 0 {
		errs = append(errs, "map.span_lat and map.span_lng must be positive")
	}
	if c.Map.EdgePadding < 0 {
		errs = append(errs, "map.edge_padding must not be negative")
	}
	if _, err := colorful.Hex(c.Render.StrokeColor); err != nil {
		errs = append(errs, fmt.Sprintf("render.stroke_color must be a hex color like #0000FF, got %q", c.Render.StrokeColor))
	}
	if c.Render.LineWidth <= 0 {
		errs = append(errs, "render.line_width must be positive")
	}
	if c.Fetch.Timeout < 0 {
		errs = append(errs, "fetch.timeout must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Adapter converts the loaded configuration into map adapter settings.
func (c *Config) Adapter() mapview.Config {
	mode, _ := entities.ParseTransportMode(c.Route.Transport)
	return mapview.Config{
		Source:      c.Route.Source.Placemark(),
		Destination: c.Route.Destination.Placemark(),
		Transport:   mode,
		Center:      entities.Coordinate{Lat: c.Map.CenterLat, Lng: c.Map.CenterLng},
		Span:        mapsurface.Span{LatDelta: c.Map.SpanLat, LngDelta: c.Map.SpanLng},
		EdgePadding: c.Map.EdgePadding,
		StrokeColor: c.Render.StrokeColor,
		LineWidth:   c.Render.LineWidth,
		Timeout:     c.Fetch.Timeout,
	}
}
