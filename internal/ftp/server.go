package ftp

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fclairamb/ftpserverlib"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const IPResolveURL = "https://ipinfo.io/ip"

var (
	ErrNoTLS                 = errors.New("TLS is not configured")
	ErrBadUserNameOrPassword = errors.New("bad username or password")
)

type Config struct {
	Addr      string `mapstructure:"addr"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	PortRange string `mapstructure:"port_range"`
}

// Serv exposes the served tree over FTP. The same afero filesystem the HTTP
// frontend uses is handed to clients, so hidden-path and read-only policies
// apply to FTP sessions too.
func Serv(fs afero.Fs, cfg *Config) error {
	// If Addr not provided, do not start FTP server
	if cfg.Addr == "" {
		return nil
	}
	var portRange *ftpserver.PortRange
	if cfg.PortRange != "" {
		portRange = &ftpserver.PortRange{}
		if _, err := fmt.Sscanf(cfg.PortRange, "%d-%d", &portRange.Start, &portRange.End); err != nil {
			log.Fatal().Str("c", "ftpserver").Str("range", cfg.PortRange).Err(err).Msg("bad port range")
		}
	}
	driver := &Driver{
		Fs:       fs,
		username: cfg.Username,
		password: cfg.Password,
		Settings: &ftpserver.Settings{
			ListenAddr:          cfg.Addr,
			DefaultTransferType: ftpserver.TransferTypeBinary,
			// FTP considers a connection idle even while a transfer is
			// running on the data channel. The default 900s would kill
			// large downloads, so allow a day.
			IdleTimeout: 86400,
		},
	}

	// Enable PASV mode if portRange is supplied
	if portRange != nil {
		driver.Settings.PassiveTransferPortRange = portRange
		driver.Settings.PublicIPResolver = func(context ftpserver.ClientContext) (string, error) {
			resp, err := http.Get(IPResolveURL)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			ip, err := io.ReadAll(resp.Body)
			if err != nil {
				return "", err
			}
			return string(ip), nil
		}
	}

	server := ftpserver.NewFtpServer(driver)
	log.Info().Str("c", "ftp").Str("addr", cfg.Addr).Msg("starting ftp server")

	return server.ListenAndServe()
}

// Driver is the FTP server driver implementation.
type Driver struct {
	Fs       afero.Fs
	Settings *ftpserver.Settings
	username string
	password string
}

// ClientConnected is called when a client is connected to the FTP server.
func (d *Driver) ClientConnected(cc ftpserver.ClientContext) (string, error) {
	log.Info().Str("c", "ftpserver").Str("addr", cc.RemoteAddr().String()).
		Str("client", cc.GetClientVersion()).Uint32("id", cc.ID()).Msg("client connected")
	return "Filebox FTP Server", nil
}

// ClientDisconnected is called when a client is disconnected from the FTP server.
func (d *Driver) ClientDisconnected(cc ftpserver.ClientContext) {
	log.Info().Str("c", "ftpserver").Str("addr", cc.RemoteAddr().String()).
		Str("client", cc.GetClientVersion()).Uint32("id", cc.ID()).Msg("client disconnected")
}

// AuthUser authenticates a user during the FTP server login process.
func (d *Driver) AuthUser(cc ftpserver.ClientContext, user, pass string) (ftpserver.ClientDriver, error) {
	if d.username != "" && d.username != user || d.password != "" && d.password != pass {
		log.Info().Str("c", "ftpserver").Str("addr", cc.RemoteAddr().String()).Uint32("id", cc.ID()).
			Str("user", user).Err(ErrBadUserNameOrPassword).Msg("authentication failed")
		return nil, ErrBadUserNameOrPassword
	}
	return d.Fs, nil
}

// GetSettings returns the FTP server settings.
func (d *Driver) GetSettings() (*ftpserver.Settings, error) { return d.Settings, nil }

// GetTLSConfig returns the TLS configuration for the FTP server.
func (d *Driver) GetTLSConfig() (*tls.Config, error) { return nil, ErrNoTLS }
