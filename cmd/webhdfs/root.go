package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hdfsio/webhdfs"
)

// Version information injected at build time.
var Version = "dev"

var (
	flagURI           string
	flagUser          string
	flagDoas          string
	flagToken         string
	flagTimeoutSec    uint
	flagNatmapFile    string
	flagNatmapEntries []string
	flagSaveConfig    string
)

var rootCmd = &cobra.Command{
	Use:           "webhdfs [options]... <command> [files]...",
	Short:         "WebHDFS command-line client",
	Long:          "webhdfs talks to the WebHDFS REST API of an HDFS cluster.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSaveConfig != "" {
			fc, err := effectiveConfig()
			if err != nil {
				return err
			}
			return webhdfs.WriteConfigFile(flagSaveConfig, fc)
		}
		_ = cmd.Help()
		return errors.New("no command given")
	},
}

// Execute runs the CLI; a non-nil error maps to exit code 1.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagURI, "uri", "U", "", "API entrypoint URL")
	pf.StringVarP(&flagUser, "user", "u", "", "user name (user.name)")
	pf.StringVarP(&flagDoas, "doas", "d", "", "doas user name")
	pf.StringVarP(&flagToken, "dt", "T", "", "delegation token")
	pf.UintVarP(&flagTimeoutSec, "timeout", "t", 0, "default timeout in seconds")
	pf.StringVarP(&flagNatmapFile, "natmap-file", "N", "", "path to NAT mappings file (k=v lines)")
	pf.StringArrayVarP(&flagNatmapEntries, "natmap-entry", "n", nil, "NAT mapping k=v (repeatable)")
	pf.StringVar(&flagSaveConfig, "save-config", "", "save the effective configuration to the file")

	rootCmd.AddCommand(getCmd)
}

// effectiveConfig is the file configuration (first hit in the search order)
// with command-line flags laid on top.
func effectiveConfig() (*webhdfs.FileConfig, error) {
	fc, err := webhdfs.ReadConfig()
	if err != nil {
		return nil, err
	}
	if fc == nil {
		fc = &webhdfs.FileConfig{}
	}

	if flagURI != "" {
		fc.Entrypoint = flagURI
	}
	if flagUser != "" {
		fc.UserName = flagUser
	}
	if flagDoas != "" {
		fc.DoAs = flagDoas
	}
	if flagToken != "" {
		fc.DelegationToken = flagToken
	}
	if flagTimeoutSec != 0 {
		fc.DefaultTimeout = time.Duration(flagTimeoutSec) * time.Second
	}

	if flagNatmapFile != "" {
		nm, err := readKVFile(flagNatmapFile)
		if err != nil {
			return nil, err
		}
		fc.NatMap = nm
	}
	for _, entry := range flagNatmapEntries {
		k, v, err := splitKV(entry)
		if err != nil {
			return nil, err
		}
		if fc.NatMap == nil {
			fc.NatMap = map[string]string{}
		}
		fc.NatMap[k] = v
	}
	return fc, nil
}

func newSyncClient() (*webhdfs.SyncHdfsClient, error) {
	fc, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	if fc.Entrypoint == "" {
		return nil, errors.New("no API entrypoint configured (use -U or a webhdfs.toml)")
	}

	client, err := webhdfs.New(fc.Entrypoint,
		webhdfs.WithFileConfig(fc),
		webhdfs.WithLogger(cliLogger()))
	if err != nil {
		return nil, err
	}
	return webhdfs.NewSyncClient(client), nil
}

func cliLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
