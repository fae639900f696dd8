// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeCluster is an in-memory NameNode/DataNode pair speaking just enough
// WebHDFS for the tests: metadata ops answer directly, data ops redirect to
// the DataNode with a 307.
type fakeCluster struct {
	t *testing.T

	mu    sync.Mutex
	files map[string][]byte

	nn *httptest.Server
	dn *httptest.Server

	// standby makes the NameNode answer every request with a
	// StandbyException, the way a standby NameNode does.
	standby bool

	nnRequests []string // RequestURI log
	dnRequests []string
}

func newFakeCluster(t *testing.T) *fakeCluster {
	c := &fakeCluster{t: t, files: map[string][]byte{}}
	c.dn = httptest.NewServer(http.HandlerFunc(c.dataNode))
	c.nn = httptest.NewServer(http.HandlerFunc(c.nameNode))
	t.Cleanup(c.nn.Close)
	t.Cleanup(c.dn.Close)
	return c
}

func (c *fakeCluster) put(path string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = data
}

func (c *fakeCluster) get(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.files[path]
	return b, ok
}

func (c *fakeCluster) nnRequestCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.nnRequests)
}

func (c *fakeCluster) nnLog() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.nnRequests...)
}

func (c *fakeCluster) dnLog() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.dnRequests...)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeRemoteException(w http.ResponseWriter, status int, exception, javaClass, message string) {
	writeJSON(w, status, map[string]interface{}{
		"RemoteException": map[string]string{
			"exception":     exception,
			"javaClassName": javaClass,
			"message":       message,
		},
	})
}

func fileStatusJSON(path string, data []byte) map[string]interface{} {
	return map[string]interface{}{
		"accessTime":       1320171722771,
		"blockSize":        134217728,
		"group":            "supergroup",
		"length":           len(data),
		"modificationTime": 1320171722771,
		"owner":            "webuser",
		"pathSuffix":       "",
		"permission":       "644",
		"replication":      1,
		"type":             "FILE",
	}
}

func (c *fakeCluster) nameNode(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.nnRequests = append(c.nnRequests, r.RequestURI)
	standby := c.standby
	c.mu.Unlock()

	if standby {
		writeRemoteException(w, http.StatusForbidden, "StandbyException",
			"org.apache.hadoop.ipc.StandbyException",
			"Operation category WRITE is not supported in state standby")
		return
	}

	q := r.URL.Query()
	path := strings.TrimPrefix(r.URL.Path, "/webhdfs/v1")
	switch q.Get("op") {
	case "GETFILESTATUS":
		data, ok := c.get(path)
		if !ok {
			writeRemoteException(w, http.StatusNotFound, "FileNotFoundException",
				"java.io.FileNotFoundException", fmt.Sprintf("File does not exist: %s", path))
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"FileStatus": fileStatusJSON(path, data)})

	case "LISTSTATUS":
		c.mu.Lock()
		var statuses []map[string]interface{}
		for p, data := range c.files {
			if strings.HasPrefix(p, strings.TrimSuffix(path, "/")+"/") {
				st := fileStatusJSON(p, data)
				st["pathSuffix"] = strings.TrimPrefix(p, strings.TrimSuffix(path, "/")+"/")
				statuses = append(statuses, st)
			}
		}
		c.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"FileStatuses": map[string]interface{}{"FileStatus": statuses},
		})

	case "OPEN", "CREATE", "APPEND":
		w.Header().Set("Location", c.dn.URL+r.RequestURI)
		w.WriteHeader(http.StatusTemporaryRedirect)

	case "MKDIRS", "RENAME", "DELETE":
		if q.Get("op") == "RENAME" {
			c.mu.Lock()
			if data, ok := c.files[path]; ok {
				c.files[q.Get("destination")] = data
				delete(c.files, path)
			}
			c.mu.Unlock()
		}
		writeJSON(w, http.StatusOK, map[string]bool{"boolean": true})

	case "CONCAT":
		c.mu.Lock()
		for _, src := range strings.Split(q.Get("sources"), ",") {
			c.files[path] = append(c.files[path], c.files[src]...)
			delete(c.files, src)
		}
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)

	case "CREATESYMLINK":
		w.WriteHeader(http.StatusOK)

	default:
		writeRemoteException(w, http.StatusBadRequest, "IllegalArgumentException",
			"java.lang.IllegalArgumentException", "Invalid value for webhdfs parameter \"op\"")
	}
}

func (c *fakeCluster) dataNode(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.dnRequests = append(c.dnRequests, r.RequestURI)
	c.mu.Unlock()

	q := r.URL.Query()
	path := strings.TrimPrefix(r.URL.Path, "/webhdfs/v1")
	switch q.Get("op") {
	case "OPEN":
		data, ok := c.get(path)
		if !ok {
			writeRemoteException(w, http.StatusNotFound, "FileNotFoundException",
				"java.io.FileNotFoundException", fmt.Sprintf("File does not exist: %s", path))
			return
		}
		offset := int64(0)
		if v := q.Get("offset"); v != "" {
			offset, _ = strconv.ParseInt(v, 10, 64)
		}
		if offset > int64(len(data)) {
			offset = int64(len(data))
		}
		chunk := data[offset:]
		if v := q.Get("length"); v != "" {
			if length, _ := strconv.ParseInt(v, 10, 64); length < int64(len(chunk)) {
				chunk = chunk[:length]
			}
		}
		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(chunk)

	case "CREATE":
		body, _ := io.ReadAll(r.Body)
		c.put(path, body)
		w.WriteHeader(http.StatusCreated)

	case "APPEND":
		body, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.files[path] = append(c.files[path], body...)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)

	default:
		writeRemoteException(w, http.StatusBadRequest, "IllegalArgumentException",
			"java.lang.IllegalArgumentException", "Invalid value for webhdfs parameter \"op\"")
	}
}

func hostOf(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "http://")
}
