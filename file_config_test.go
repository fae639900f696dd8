// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdfsio/webhdfs"
)

const sampleTOML = `
entrypoint = "http://nn1:50070"
alt_entrypoint = "http://nn2:50070"
default_timeout = "45s"
user_name = "dr.who"
doas = "impersonated"
dt = "TOKEN"

[natmap]
"dn.internal:1006" = "localhost:11006"
"dn.internal:1007" = "localhost:11007"

[https]
identity_file = "client.p12"
identity_password = "secret"
root_certificates = ["ca.pem"]
min_protocol_version = "Tlsv12"
max_protocol_version = "no_check"
danger_accept_invalid_certs = false
danger_accept_invalid_hostnames = true
use_sni = true
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webhdfs.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfigFile(t *testing.T) {
	path := writeTempConfig(t, sampleTOML)

	fc, err := webhdfs.ReadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://nn1:50070", fc.Entrypoint)
	assert.Equal(t, "http://nn2:50070", fc.AltEntrypoint)
	assert.Equal(t, 45*time.Second, fc.DefaultTimeout)
	assert.Equal(t, "dr.who", fc.UserName)
	assert.Equal(t, "impersonated", fc.DoAs)
	assert.Equal(t, "TOKEN", fc.DelegationToken)
	assert.Equal(t, map[string]string{
		"dn.internal:1006": "localhost:11006",
		"dn.internal:1007": "localhost:11007",
	}, fc.NatMap)

	require.NotNil(t, fc.HTTPS)
	assert.Equal(t, "client.p12", fc.HTTPS.IdentityFile)
	assert.Equal(t, []string{"ca.pem"}, fc.HTTPS.RootCertificates)
	assert.Equal(t, "Tlsv12", fc.HTTPS.MinProtocolVersion)
	assert.Equal(t, "no_check", fc.HTTPS.MaxProtocolVersion)
	assert.False(t, fc.HTTPS.DangerAcceptInvalidCerts)
	assert.True(t, fc.HTTPS.DangerAcceptInvalidHostnames)
	require.NotNil(t, fc.HTTPS.UseSNI)
	assert.True(t, *fc.HTTPS.UseSNI)
}

func TestReadConfigFileUnparsable(t *testing.T) {
	path := writeTempConfig(t, "entrypoint = [ not toml")

	_, err := webhdfs.ReadConfigFile(path)
	require.Error(t, err)
	assert.Equal(t, webhdfs.KindConfigDecode, webhdfs.KindOf(err))
}

func TestReadConfigEnvVar(t *testing.T) {
	path := writeTempConfig(t, sampleTOML)
	t.Setenv(webhdfs.ConfigEnvVar, path)

	fc, err := webhdfs.ReadConfig()
	require.NoError(t, err)
	require.NotNil(t, fc)
	assert.Equal(t, "http://nn1:50070", fc.Entrypoint)
}

func TestReadConfigEnvVarMissingFileIsFatal(t *testing.T) {
	t.Setenv(webhdfs.ConfigEnvVar, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := webhdfs.ReadConfig()
	require.Error(t, err)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestReadConfigNoFileMeansNoConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv(webhdfs.ConfigEnvVar, "")

	fc, err := webhdfs.ReadConfig()
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestReadConfigCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv(webhdfs.ConfigEnvVar, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, webhdfs.ConfigFileName), []byte(sampleTOML), 0o600))

	fc, err := webhdfs.ReadConfig()
	require.NoError(t, err)
	require.NotNil(t, fc)
	assert.Equal(t, "http://nn1:50070", fc.Entrypoint)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")

	in := &webhdfs.FileConfig{
		Entrypoint:     "http://nn1:50070",
		AltEntrypoint:  "http://nn2:50070",
		DefaultTimeout: 30 * time.Second,
		UserName:       "dr.who",
		NatMap:         map[string]string{"a:1": "b:2"},
	}
	require.NoError(t, webhdfs.WriteConfigFile(path, in))

	out, err := webhdfs.ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, in.Entrypoint, out.Entrypoint)
	assert.Equal(t, in.AltEntrypoint, out.AltEntrypoint)
	assert.Equal(t, in.DefaultTimeout, out.DefaultTimeout)
	assert.Equal(t, in.UserName, out.UserName)
	assert.Equal(t, in.NatMap, out.NatMap)
}

func TestSampleConfigIsComplete(t *testing.T) {
	fc := webhdfs.SampleConfig()
	assert.NotEmpty(t, fc.Entrypoint)
	assert.NotZero(t, fc.DefaultTimeout)
}
