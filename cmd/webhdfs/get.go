package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hdfsio/webhdfs"
)

var getCmd = &cobra.Command{
	Use:     "get <remote> [<local> | <remotes>... <localdir>]",
	Aliases: []string{"g"},
	Short:   "Get files from HDFS",
	Long: `Get files from HDFS.

With a single remote path the file is saved under its base name in the
current directory. With two arguments the second names the local output
file. With more, the last argument is a local directory (created if needed)
receiving every remote file under its base name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cx, err := newSyncClient()
		if err != nil {
			return err
		}

		switch len(args) {
		case 1:
			return getOne(cx, args[0], filepath.Base(args[0]))
		case 2:
			return getOne(cx, args[0], args[1])
		default:
			targetDir := args[len(args)-1]
			if err := os.MkdirAll(targetDir, 0o755); err != nil {
				return fmt.Errorf("cannot create output dir %s: %w", targetDir, err)
			}
			for _, remote := range args[:len(args)-1] {
				local := filepath.Join(targetDir, filepath.Base(remote))
				if err := getOne(cx, remote, local); err != nil {
					return err
				}
			}
			return nil
		}
	},
}

func getOne(cx *webhdfs.SyncHdfsClient, remote, local string) error {
	out, err := os.Create(local)
	if err != nil {
		return fmt.Errorf("cannot create output file %s: %w", local, err)
	}
	defer out.Close()

	if err := cx.GetFile(remote, out); err != nil {
		return fmt.Errorf("get %s: %w", remote, err)
	}
	return out.Close()
}
