package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	zl "github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/filebox/filebox/internal/filesystem"
	"github.com/filebox/filebox/internal/ftp"
	"github.com/filebox/filebox/internal/http"
	"github.com/filebox/filebox/internal/sharestore"
	"github.com/filebox/filebox/internal/sharestore/boltdb"
	"github.com/filebox/filebox/internal/sharestore/postgres"
)

// Config represents the entire configuration as defined in the YAML file.
type Config struct {
	Serve filesystem.Config `mapstructure:"serve"`

	Sharestore struct {
		Bolt     boltdb.Config   `mapstructure:"boltdb"`
		Postgres postgres.Config `mapstructure:"postgres"`
	} `mapstructure:"sharestore"`

	Frontend struct {
		FTP  ftp.Config  `mapstructure:"ftp"`
		HTTP http.Config `mapstructure:"http"`
	} `mapstructure:"frontend"`
}

var config Config

var (
	showVersion = flag.Bool("version", false, "print version information and exit")
	debugMode   = flag.Bool("debug", false, "enable debug logs")
	configFile  = flag.String("config", "", "path to filebox configuration file")
)

func main() {
	flag.Parse()

	// Check if a version flag is set
	if *showVersion {
		fmt.Printf("filebox: %s\n", version)
		os.Exit(0)
	}

	// Set the maximum number of operating system threads to use.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Setup logger
	log.Logger = zl.New(zl.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	zl.SetGlobalLevel(zl.InfoLevel)
	if *debugMode {
		zl.SetGlobalLevel(zl.DebugLevel)
	}

	// Load config file
	initConfig()

	// The served root must exist up front
	fi, err := os.Stat(config.Serve.Root)
	if err != nil || !fi.IsDir() {
		log.Fatal().Str("c", "main").Str("root", config.Serve.Root).Msg("serve root is not a directory")
	}
	fs := filesystem.New(&config.Serve)

	// Load share store, if one is configured
	var store sharestore.ShareStore
	if config.Sharestore.Bolt.DbPath != "" {
		store = boltdb.New(&config.Sharestore.Bolt)
	}
	if store == nil && config.Sharestore.Postgres.DbURL != "" {
		store = postgres.New(&config.Sharestore.Postgres)
	}
	if store == nil {
		log.Info().Str("c", "main").Msg("no sharestore configured, share links disabled")
	} else {
		sharestore.Load(store)
		go pruneShares()
	}

	errCh := make(chan error)
	// Create and start ftp server
	if config.Frontend.FTP.Addr != "" {
		go func() { errCh <- ftp.Serv(fs, &config.Frontend.FTP) }()
	}
	// Create and start http server
	go func() { errCh <- http.Serv(fs, config.Serve.Hidden, &config.Frontend.HTTP) }()

	if err = <-errCh; err != nil {
		log.Fatal().Str("c", "main").Err(err).Msgf("filebox crashed")
	}
}

// pruneShares periodically removes expired share links.
func pruneShares() {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for now := range ticker.C {
		pruned, err := sharestore.Prune(now)
		if err != nil {
			log.Error().Str("c", "main").Err(err).Msg("failed to prune shares")
			continue
		}
		if pruned > 0 {
			log.Info().Str("c", "main").Int("pruned", pruned).Msg("expired shares removed")
		}
	}
}

func initConfig() {
	// Setup config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/filebox/")
	if *configFile != "" {
		viper.SetConfigFile(*configFile)
	}
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal().Str("c", "config").Err(err).Msg("failed to read config")
	}

	// Bind env
	_ = viper.BindEnv("serve.root", "SERVE_ROOT")
	_ = viper.BindEnv("serve.hidden", "SERVE_HIDDEN")
	_ = viper.BindEnv("serve.readonly", "SERVE_READONLY")

	_ = viper.BindEnv("sharestore.boltdb.db_path", "BOLTDB_DB_PATH")
	_ = viper.BindEnv("sharestore.postgres.db_url", "POSTGRES_DB_URL")

	_ = viper.BindEnv("frontend.ftp.addr", "FTP_ADDR")
	_ = viper.BindEnv("frontend.ftp.username", "FTP_USERNAME")
	_ = viper.BindEnv("frontend.ftp.password", "FTP_PASSWORD")
	_ = viper.BindEnv("frontend.ftp.port_range", "FTP_PORT_RANGE")
	_ = viper.BindEnv("frontend.http.addr", "HTTP_ADDR")
	_ = viper.BindEnv("frontend.http.username", "HTTP_USERNAME")
	_ = viper.BindEnv("frontend.http.password", "HTTP_PASSWORD")
	_ = viper.BindEnv("frontend.http.guest_mode", "HTTP_GUEST_MODE")
	_ = viper.BindEnv("frontend.http.https_addr", "HTTPS_ADDR")
	_ = viper.BindEnv("frontend.http.https_crtpath", "HTTPS_CRTPATH")
	_ = viper.BindEnv("frontend.http.https_keypath", "HTTPS_KEYPATH")

	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal().Str("c", "config").Err(err).Msg("failed to decode config into struct")
	}
}
