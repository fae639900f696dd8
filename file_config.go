// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

// File-based configuration.
//
// The configuration files are never read unless explicitly requested. Three
// locations are probed, in order; the search stops on the first file found
// and solely that file is used, no merging:
//
//  1. the path named by the WEBHDFS_CONFIG environment variable;
//  2. webhdfs.toml in the current directory;
//  3. .webhdfs.toml in the user's home directory
//     (%HOMEDRIVE%%HOMEPATH% on Windows).
//
// No file found means no configuration. A file that exists but cannot be
// read or parsed is a hard error.

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"

	http_ "github.com/hdfsio/webhdfs/http"
)

// ConfigEnvVar names the environment variable pointing at an explicit
// configuration file.
const ConfigEnvVar = "WEBHDFS_CONFIG"

// ConfigFileName is the file probed in the current directory.
const ConfigFileName = "webhdfs.toml"

// UserConfigFileName is the file probed in the home directory.
const UserConfigFileName = ".webhdfs.toml"

// FileConfig is the TOML configuration surface.
type FileConfig struct {
	// Entrypoint is the primary NameNode URL.
	Entrypoint string `mapstructure:"entrypoint" validate:"required"`
	// AltEntrypoint is the standby NameNode URL for HA failover.
	AltEntrypoint string `mapstructure:"alt_entrypoint"`
	// DefaultTimeout caps each operation, e.g. "30s".
	DefaultTimeout time.Duration `mapstructure:"default_timeout"`
	UserName       string        `mapstructure:"user_name"`
	DoAs           string        `mapstructure:"doas"`
	// DelegationToken is keyed `dt` in the file.
	DelegationToken string `mapstructure:"dt"`
	// NatMap maps cluster-internal authorities to client-reachable ones.
	NatMap map[string]string `mapstructure:"natmap"`
	HTTPS  *HTTPSConfig      `mapstructure:"https"`
}

// HTTPSConfig is the `[https]` subtable.
type HTTPSConfig struct {
	// IdentityFile is a PKCS#12 bundle holding the client certificate and key.
	IdentityFile     string `mapstructure:"identity_file"`
	IdentityPassword string `mapstructure:"identity_password"`
	// RootCertificates are PEM files added to the trusted roots.
	RootCertificates []string `mapstructure:"root_certificates"`
	// Protocol bounds: Sslv3|Tlsv10|Tlsv11|Tlsv12|no_check.
	MinProtocolVersion string `mapstructure:"min_protocol_version"`
	MaxProtocolVersion string `mapstructure:"max_protocol_version"`

	DangerAcceptInvalidCerts     bool  `mapstructure:"danger_accept_invalid_certs"`
	DangerAcceptInvalidHostnames bool  `mapstructure:"danger_accept_invalid_hostnames"`
	UseSNI                       *bool `mapstructure:"use_sni"`
}

// TLSOptions maps the `[https]` subtable onto the transport's TLS options.
func (h *HTTPSConfig) TLSOptions() *http_.TLSOptions {
	return &http_.TLSOptions{
		IdentityFile:                 h.IdentityFile,
		IdentityPassword:             h.IdentityPassword,
		RootCertificates:             h.RootCertificates,
		MinProtocolVersion:           h.MinProtocolVersion,
		MaxProtocolVersion:           h.MaxProtocolVersion,
		DangerAcceptInvalidCerts:     h.DangerAcceptInvalidCerts,
		DangerAcceptInvalidHostnames: h.DangerAcceptInvalidHostnames,
		UseSNI:                       h.UseSNI,
	}
}

// ReadConfigFile parses the TOML file at path.
func ReadConfigFile(path string) (*FileConfig, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, wrapError(KindConfigDecode, err, "cannot read configuration %s", path)
	}
	var fc FileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, wrapError(KindConfigDecode, err, "cannot parse configuration %s", path)
	}
	return &fc, nil
}

// ReadConfig walks the search locations and parses the first file found.
// It returns (nil, nil) when no location has a file.
func ReadConfig() (*FileConfig, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return ReadConfigFile(path)
	}
	if fileExists(ConfigFileName) {
		return ReadConfigFile(ConfigFileName)
	}
	if home := homeDir(); home != "" {
		path := filepath.Join(home, UserConfigFileName)
		if fileExists(path) {
			return ReadConfigFile(path)
		}
	}
	return nil, nil
}

// WriteConfigFile saves fc as TOML at path.
func WriteConfigFile(path string, fc *FileConfig) error {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("toml")
	v.Set("entrypoint", fc.Entrypoint)
	if fc.AltEntrypoint != "" {
		v.Set("alt_entrypoint", fc.AltEntrypoint)
	}
	if fc.DefaultTimeout > 0 {
		v.Set("default_timeout", fc.DefaultTimeout.String())
	}
	if fc.UserName != "" {
		v.Set("user_name", fc.UserName)
	}
	if fc.DoAs != "" {
		v.Set("doas", fc.DoAs)
	}
	if fc.DelegationToken != "" {
		v.Set("dt", fc.DelegationToken)
	}
	if len(fc.NatMap) != 0 {
		v.Set("natmap", fc.NatMap)
	}
	if fc.HTTPS != nil {
		v.Set("https::identity_file", fc.HTTPS.IdentityFile)
		v.Set("https::identity_password", fc.HTTPS.IdentityPassword)
		v.Set("https::root_certificates", fc.HTTPS.RootCertificates)
		v.Set("https::min_protocol_version", fc.HTTPS.MinProtocolVersion)
		v.Set("https::max_protocol_version", fc.HTTPS.MaxProtocolVersion)
		v.Set("https::danger_accept_invalid_certs", fc.HTTPS.DangerAcceptInvalidCerts)
		v.Set("https::danger_accept_invalid_hostnames", fc.HTTPS.DangerAcceptInvalidHostnames)
		if fc.HTTPS.UseSNI != nil {
			v.Set("https::use_sni", *fc.HTTPS.UseSNI)
		}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return wrapError(KindConfigDecode, err, "cannot write configuration %s", path)
	}
	return nil
}

// SampleConfig returns a starting-point configuration.
func SampleConfig() *FileConfig {
	return &FileConfig{
		Entrypoint:      "http://namenode.hdfs.intra:50070",
		DefaultTimeout:  DefaultTimeout,
		UserName:        "dr.who",
		DoAs:            "doas.user",
		DelegationToken: "---encoded-delegation-token---",
	}
}

func fileExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		d := os.Getenv("HOMEDRIVE")
		p := os.Getenv("HOMEPATH")
		if d != "" && p != "" {
			return d + p
		}
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}
