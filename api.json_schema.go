// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"syscall"

	time_ "github.com/searKing/golang/go/time"
)

// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Boolean_JSON_Schema
type Boolean = bool // A boolean value.

// BooleanResponse is the JSON envelope around Boolean.
type BooleanResponse struct {
	Boolean Boolean `json:"boolean"`
}

type FileType string

const (
	FileTypeFile      FileType = "FILE"
	FileTypeDirectory FileType = "DIRECTORY"
	FileTypeSymlink   FileType = "SYMLINK"
)

// FileStatus describes a file or directory in HDFS.
// JavaScript syntax is used by Hadoop to define fileStatusProperties so that it
// can be referred in both FileStatus and FileStatuses JSON schemas.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#FileStatus_Properties
type FileStatus struct {
	PathPrefix       string                    `json:"-"`                // The path prefix, for the current file|dir
	AccessTime       time_.UnixTimeMillisecond `json:"accessTime"`       // The access time.
	BlockSize        int64                     `json:"blockSize"`        // The block size of a file.
	Group            string                    `json:"group"`            // The group owner.
	Length           int64                     `json:"length"`           // The number of bytes in a file. Zero for directories.
	ModificationTime time_.UnixTimeMillisecond `json:"modificationTime"` // The modification time.
	Owner            string                    `json:"owner"`            // The user who is the owner.
	PathSuffix       string                    `json:"pathSuffix"`       // The path suffix. For subfile|subdir.
	Permission       Permission                `json:"permission"`       // The permission represented as an octal string.
	Replication      int64                     `json:"replication"`      // The number of replications of a file.
	Symlink          string                    `json:"symlink"`          // The link target of a symlink.
	Type             FileType                  `json:"type"`             // ["FILE", "DIRECTORY", "SYMLINK"]
}

// FileStatuses is the array schema inside a LISTSTATUS response.
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#FileStatuses_JSON_Schema
type FileStatuses struct {
	FileStatus []FileStatus `json:"FileStatus"` // An array of FileStatus
}

func (s *FileStatuses) Len() int { return len(s.FileStatus) }

func (s *FileStatuses) Swap(i, j int) {
	s.FileStatus[i], s.FileStatus[j] = s.FileStatus[j], s.FileStatus[i]
}

func (s *FileStatuses) Less(i, j int) bool {
	return s.FileStatus[i].PathSuffix < s.FileStatus[j].PathSuffix
}

// The permission of a file/directory.
// 644 for files, 755 for directories
// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Permission
type Permission uint16

const (
	DefaultPermissionFile      Permission = 0644
	DefaultPermissionDirectory Permission = 0755
)

func (p Permission) String() string {
	return fmt.Sprintf("%o", uint16(p))
}

// MarshalJSON implements the json.Marshaler interface for Permission.
func (p Permission) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Permission.
func (p *Permission) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Permission should be a string, got %s", data)
	}

	i, err := strconv.ParseUint(s, 8, 16)
	if err != nil {
		return err
	}
	*p = Permission(i)
	return nil
}

// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#RemoteException_JSON_Schema
type RemoteException struct {
	Exception     string `json:"exception"`               // Name of the exception
	Message       string `json:"message"`                 // Exception message
	JavaClassName string `json:"javaClassName,omitempty"` // Java class name of the exception
}

// Error returns the string representation of the error.
// Satisfies the error interface.
func (e *RemoteException) Error() string {
	var msg strings.Builder
	msg.WriteString(e.Exception)
	if e.Message != "" {
		msg.WriteString(fmt.Sprintf(": %s", e.Message))
	}
	if e.JavaClassName != "" {
		msg.WriteString(fmt.Sprintf(" in %s", e.JavaClassName))
	}
	return msg.String()
}

const (
	JavaClassNameFileNotFoundException            = "java.io.FileNotFoundException"
	JavaClassNameAccessControlException           = "org.apache.hadoop.security.AccessControlException"
	JavaClassNamePathIsNotEmptyDirectoryException = "org.apache.hadoop.fs.PathIsNotEmptyDirectoryException"
	JavaClassNameFileAlreadyExistsException       = "org.apache.hadoop.fs.FileAlreadyExistsException"
	JavaClassNameAlreadyBeingCreatedException     = "org.apache.hadoop.hdfs.protocol.AlreadyBeingCreatedException"
)

func (e *RemoteException) Unwrap() error {
	switch e.JavaClassName {
	case JavaClassNameFileNotFoundException:
		return syscall.ENOENT
	case JavaClassNameAccessControlException:
		return syscall.EPERM
	case JavaClassNamePathIsNotEmptyDirectoryException:
		return syscall.ENOTEMPTY
	case JavaClassNameFileAlreadyExistsException:
		return syscall.EEXIST
	case JavaClassNameAlreadyBeingCreatedException:
		return syscall.EEXIST
	default:
		return nil
	}
}
