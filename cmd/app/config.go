package main

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"socialelections/config"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// 沒有 .env / yaml 時也能直接用 memory driver 啟動
var defaults = map[string]any{
	"APP__ENV":                        "local",
	"APP__PORT":                       3000,
	"APP__NAME":                       "socialelections",
	"LOG__LEVEL":                      "info",
	"FLUENTD__TAG_PREFIX":             "socialelections",
	"WORKS_COUNCIL__STORAGE":          string(config.StorageMemory),
	"WORKS_COUNCIL__LOCKER":           string(config.LockerMemory),
	"WORKS_COUNCIL__LOCK_TTL":         10000,
	"WORKS_COUNCIL__LOCK_WAIT":        5000,
	"WORKS_COUNCIL__INTEGRITY_CRON":   "",
	"WORKS_COUNCIL__INTEGRITY_REPAIR": false,
}

// loadConfig 優先序：環境變數 > 指定的 .env / yaml > defaults
func loadConfig(root, envPath, yamlPath string) (*config.Configuration, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	useFile := false
	if envPath != "" {
		useFile = true
		if !filepath.IsAbs(envPath) {
			envPath = filepath.Join(root, envPath)
		}
		fmt.Println("load .env config:", envPath)
		v.SetConfigFile(envPath)
		v.SetConfigType("env")
	} else if yamlPath != "" {
		useFile = true
		if !filepath.IsAbs(yamlPath) {
			yamlPath = filepath.Join(root, "conf", yamlPath)
		}
		fmt.Println("load yaml config:", yamlPath)
		v.SetConfigFile(yamlPath)
		v.SetConfigType("yaml")
	}

	conf := &config.Configuration{}
	if useFile {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
		v.WatchConfig()
		v.OnConfigChange(func(in fsnotify.Event) {
			fmt.Println("config file changed:", in.Name)
			if err := v.Unmarshal(conf); err != nil {
				fmt.Println("unmarshal on change failed:", err)
			}
		})
	}

	bindEnvs(v, reflect.TypeOf(config.Configuration{}))

	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	return conf, nil
}

func bindEnvs(v *viper.Viper, t reflect.Type, path ...string) {
	// 若遇到指標，取其 Elem
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			tag = field.Name
		}
		newPath := append(append([]string{}, path...), tag)
		if field.Type.Kind() == reflect.Struct || (field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct) {
			bindEnvs(v, field.Type, newPath...)
		} else {
			_ = v.BindEnv(strings.Join(newPath, "__"))
		}
	}
}
