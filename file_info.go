package webhdfs

import (
	"os"
	"path"
	"time"
)

// FileStatus implements os.FileInfo, and provides information about a file or
// directory in HDFS.
func (fi *FileStatus) Name() string {
	if fi.PathSuffix != "" {
		return fi.PathSuffix
	}
	return path.Base(path.Join(fi.PathPrefix, fi.PathSuffix))
}

func (fi *FileStatus) Size() int64 {
	return fi.Length
}

func (fi *FileStatus) Mode() os.FileMode {
	mode := os.FileMode(fi.Permission)
	if fi.IsDir() {
		mode |= os.ModeDir
	}
	if fi.Type == FileTypeSymlink {
		mode |= os.ModeSymlink
	}

	return mode
}

func (fi *FileStatus) ModTime() time.Time {
	return fi.ModificationTime.Time
}

func (fi *FileStatus) IsDir() bool {
	return fi.Type == FileTypeDirectory
}

// Sys returns the raw *FileStatus message from the namenode.
func (fi *FileStatus) Sys() interface{} {
	return fi
}
