package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"stock-sync/core/logger"
	"stock-sync/core/reconcile"
	"stock-sync/core/shopify"
	"stock-sync/core/snapshot"
	"stock-sync/core/storage"
	"stock-sync/core/transfer"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Transfer holds configuration for the snapshot origin.
	Transfer transfer.Config `mapstructure:"transfer"`
	// Storage holds configuration for the object storage origin (S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Snapshot holds the workbook column mapping.
	Snapshot snapshot.Config `mapstructure:"snapshot"`
	// Sync holds concurrency tunables for the run.
	Sync reconcile.Config `mapstructure:"sync"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`

	// Stores lists the Shopify stores to reconcile, in discovery order.
	// Populated from the numeric-suffix env convention, not mapstructure.
	Stores []shopify.Store `mapstructure:"-"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. TRANSFER_HOST -> transfer.host)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Stores = discoverStores(v)

	return &config, nil
}

// discoverStores walks the numeric suffix convention: SHOP_NAME_1 /
// ACCESS_TOKEN_1 / API_VERSION_1, SHOP_NAME_2 / ..., stopping at the first
// index missing a name or token. API_VERSION_n falls back to the default.
func discoverStores(v *viper.Viper) []shopify.Store {
	var stores []shopify.Store

	for i := 1; ; i++ {
		name := v.GetString(fmt.Sprintf("shop_name_%d", i))
		token := v.GetString(fmt.Sprintf("access_token_%d", i))
		if name == "" || token == "" {
			break
		}

		version := v.GetString(fmt.Sprintf("api_version_%d", i))
		if version == "" {
			version = shopify.DefaultAPIVersion
		}

		stores = append(stores, shopify.Store{
			Name:        name,
			AccessToken: token,
			APIVersion:  version,
		})
	}

	return stores
}

// Validate checks the fatal startup conditions: a recognized transfer origin
// with its required fields, and at least one discovered store. It runs before
// any network activity.
func (c *Config) Validate() error {
	var missing []string

	switch {
	case !c.Transfer.IsValidOrigin():
		return fmt.Errorf("unrecognized transfer origin %q", c.Transfer.Origin)
	case c.Transfer.Origin == transfer.OriginFTP:
		if c.Transfer.Host == "" {
			missing = append(missing, "TRANSFER_HOST")
		}
		if c.Transfer.User == "" {
			missing = append(missing, "TRANSFER_USER")
		}
		if c.Transfer.Password == "" {
			missing = append(missing, "TRANSFER_PASSWORD")
		}
	case c.Transfer.Origin == transfer.OriginObject:
		if c.Storage.AccessKey == "" {
			missing = append(missing, "STORAGE_ACCESS_KEY")
		}
		if c.Storage.SecretKey == "" {
			missing = append(missing, "STORAGE_SECRET_KEY")
		}
	}

	if c.Transfer.FilePath == "" {
		missing = append(missing, "TRANSFER_FILE_PATH")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if len(c.Stores) == 0 {
		return errors.New("no stores configured: set SHOP_NAME_1, ACCESS_TOKEN_1, ...")
	}

	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" || tag == "-" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
