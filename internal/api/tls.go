package api

import (
	"crypto/tls"
	"fmt"
	"os"
)

// TLSConfig holds certificate paths. A nil *TLSConfig serves plain HTTP.
type TLSConfig struct {
	CertFile string
	KeyFile  string
}

// TLSFromEnv reads SAISCOPE_TLS_CERT and SAISCOPE_TLS_KEY. Both must be set.
func TLSFromEnv() *TLSConfig {
	certFile := os.Getenv("SAISCOPE_TLS_CERT")
	keyFile := os.Getenv("SAISCOPE_TLS_KEY")
	if certFile == "" || keyFile == "" {
		return nil
	}
	return &TLSConfig{CertFile: certFile, KeyFile: keyFile}
}

// Load reads the key pair.
func (c *TLSConfig) Load() (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("load TLS key pair: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
