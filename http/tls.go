package http

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// TLSOptions mirrors the https configuration surface: trusted roots, client
// identity, protocol bounds and validation relaxations.
type TLSOptions struct {
	// IdentityFile is a PKCS#12 bundle with the client certificate and key.
	IdentityFile     string
	IdentityPassword string

	// RootCertificates are PEM files appended to the system roots.
	RootCertificates []string

	// MinProtocolVersion / MaxProtocolVersion bound the negotiated protocol:
	// Sslv3|Tlsv10|Tlsv11|Tlsv12|no_check (no_check leaves the bound open).
	MinProtocolVersion string
	MaxProtocolVersion string

	// DangerAcceptInvalidCerts disables certificate verification entirely.
	DangerAcceptInvalidCerts bool
	// DangerAcceptInvalidHostnames verifies the chain but not the hostname.
	// Disabling SNI degrades to the same relaxation on this transport.
	DangerAcceptInvalidHostnames bool
	UseSNI                       *bool
}

// ProtocolVersion parses a configured protocol-version name. no_check and
// the empty string report ok=false, leaving the bound open.
func ProtocolVersion(name string) (version uint16, ok bool, err error) {
	switch name {
	case "", "no_check":
		return 0, false, nil
	case "Sslv3":
		return tls.VersionSSL30, true, nil //nolint:staticcheck // kept for configuration compatibility
	case "Tlsv10":
		return tls.VersionTLS10, true, nil
	case "Tlsv11":
		return tls.VersionTLS11, true, nil
	case "Tlsv12":
		return tls.VersionTLS12, true, nil
	default:
		return 0, false, fmt.Errorf("unknown TLS protocol version %q", name)
	}
}

// Build assembles the *tls.Config.
func (o *TLSOptions) Build() (*tls.Config, error) {
	cfg := &tls.Config{} //nolint:gosec // bounds applied below per configuration

	if v, ok, err := ProtocolVersion(o.MinProtocolVersion); err != nil {
		return nil, err
	} else if ok {
		cfg.MinVersion = v
	}
	if v, ok, err := ProtocolVersion(o.MaxProtocolVersion); err != nil {
		return nil, err
	} else if ok {
		cfg.MaxVersion = v
	}

	if len(o.RootCertificates) != 0 {
		pool, err := x509.SystemCertPool()
		if err != nil {
			pool = x509.NewCertPool()
		}
		for _, path := range o.RootCertificates {
			pem, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("cannot read root certificate %s: %w", path, err)
			}
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("no certificates found in %s", path)
			}
		}
		cfg.RootCAs = pool
	}

	if o.IdentityFile != "" {
		raw, err := os.ReadFile(o.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read identity %s: %w", o.IdentityFile, err)
		}
		key, cert, err := pkcs12.Decode(raw, o.IdentityPassword)
		if err != nil {
			return nil, fmt.Errorf("cannot decode identity %s: %w", o.IdentityFile, err)
		}
		cfg.Certificates = []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}}
	}

	relaxHostname := o.DangerAcceptInvalidHostnames || (o.UseSNI != nil && !*o.UseSNI)
	switch {
	case o.DangerAcceptInvalidCerts:
		cfg.InsecureSkipVerify = true
	case relaxHostname:
		// Verify the chain manually against the configured roots, skipping
		// only the hostname check.
		cfg.InsecureSkipVerify = true
		roots := cfg.RootCAs
		cfg.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
			if len(rawCerts) == 0 {
				return fmt.Errorf("no peer certificate")
			}
			certs := make([]*x509.Certificate, 0, len(rawCerts))
			for _, raw := range rawCerts {
				cert, err := x509.ParseCertificate(raw)
				if err != nil {
					return err
				}
				certs = append(certs, cert)
			}
			opts := x509.VerifyOptions{
				Roots:         roots,
				Intermediates: x509.NewCertPool(),
			}
			for _, cert := range certs[1:] {
				opts.Intermediates.AddCert(cert)
			}
			_, err := certs[0].Verify(opts)
			return err
		}
	}

	return cfg, nil
}
