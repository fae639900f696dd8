package http

import (
	"crypto/tls"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolVersion(t *testing.T) {
	for name, want := range map[string]uint16{
		"Sslv3":  tls.VersionSSL30,
		"Tlsv10": tls.VersionTLS10,
		"Tlsv11": tls.VersionTLS11,
		"Tlsv12": tls.VersionTLS12,
	} {
		v, ok, err := ProtocolVersion(name)
		require.NoError(t, err, name)
		require.True(t, ok, name)
		assert.Equal(t, want, v, name)
	}

	for _, open := range []string{"", "no_check"} {
		_, ok, err := ProtocolVersion(open)
		require.NoError(t, err)
		assert.False(t, ok, "%q leaves the bound open", open)
	}

	_, _, err := ProtocolVersion("Tlsv13believe")
	assert.Error(t, err)
}

func TestBuildBounds(t *testing.T) {
	cfg, err := (&TLSOptions{
		MinProtocolVersion: "Tlsv11",
		MaxProtocolVersion: "Tlsv12",
	}).Build()
	require.NoError(t, err)
	assert.Equal(t, uint16(tls.VersionTLS11), cfg.MinVersion)
	assert.Equal(t, uint16(tls.VersionTLS12), cfg.MaxVersion)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.Nil(t, cfg.VerifyPeerCertificate)

	_, err = (&TLSOptions{MinProtocolVersion: "bogus"}).Build()
	assert.Error(t, err)
}

func TestBuildRelaxations(t *testing.T) {
	cfg, err := (&TLSOptions{DangerAcceptInvalidCerts: true}).Build()
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.Nil(t, cfg.VerifyPeerCertificate, "invalid-certs mode skips verification entirely")

	cfg, err = (&TLSOptions{DangerAcceptInvalidHostnames: true}).Build()
	require.NoError(t, err)
	assert.True(t, cfg.InsecureSkipVerify)
	assert.NotNil(t, cfg.VerifyPeerCertificate, "hostname relaxation still verifies the chain")

	noSNI := false
	cfg, err = (&TLSOptions{UseSNI: &noSNI}).Build()
	require.NoError(t, err)
	assert.NotNil(t, cfg.VerifyPeerCertificate)
}

func TestBuildMissingFiles(t *testing.T) {
	_, err := (&TLSOptions{
		RootCertificates: []string{filepath.Join(t.TempDir(), "missing.pem")},
	}).Build()
	assert.Error(t, err)

	_, err = (&TLSOptions{
		IdentityFile: filepath.Join(t.TempDir(), "missing.p12"),
	}).Build()
	assert.Error(t, err)

	// A present but non-PEM root file is rejected too.
	junk := filepath.Join(t.TempDir(), "junk.pem")
	require.NoError(t, os.WriteFile(junk, []byte("not pem"), 0o600))
	_, err = (&TLSOptions{RootCertificates: []string{junk}}).Build()
	assert.Error(t, err)
}

func TestConfigDisablesRedirectFollowing(t *testing.T) {
	factory, err := NewConfig().Complete().New()
	require.NoError(t, err)

	cli, ok := factory().(*http.Client)
	require.True(t, ok)
	require.NotNil(t, cli.CheckRedirect, "the engine owns the redirect dance")
	assert.Equal(t, http.ErrUseLastResponse, cli.CheckRedirect(nil, nil))
	assert.Nil(t, http.DefaultClient.CheckRedirect, "the default client is copied, not mutated")
}
