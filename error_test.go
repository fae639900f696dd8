// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	err := errorf(KindTransport, "socket closed")
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Contains(t, err.Error(), "socket closed")

	assert.Equal(t, KindGeneric, KindOf(errors.New("plain")))
}

func TestAnnotatePreservesKindAndCause(t *testing.T) {
	cause := errorf(KindJSONDecode, "bad payload")
	err := annotate(cause, "while listing %s", "/d")

	assert.Equal(t, KindJSONDecode, KindOf(err))
	assert.Contains(t, err.Error(), "while listing /d")
	assert.Contains(t, err.Error(), "bad payload")
	assert.True(t, errors.Is(err, cause))

	assert.NoError(t, annotate(nil, "ignored"))
}

func TestAsHttpRedirect(t *testing.T) {
	signal := &Error{Kind: KindHTTPRedirect, Cause: &HttpRedirect{StatusCode: 307, Location: "http://dn:1006/x"}}

	hr, ok := AsHttpRedirect(signal)
	require.True(t, ok)
	assert.Equal(t, 307, hr.StatusCode)
	assert.Equal(t, "http://dn:1006/x", hr.Location)

	_, ok = AsHttpRedirect(errorf(KindGeneric, "nope"))
	assert.False(t, ok)
}

func TestIsStandbyException(t *testing.T) {
	standby := &Error{Kind: KindRemoteException, Cause: &RemoteException{Exception: "StandbyException"}}
	assert.True(t, IsStandbyException(standby))
	assert.True(t, IsStandbyException(&DataError{Err: standby, Data: []byte("p")}))

	other := &Error{Kind: KindRemoteException, Cause: &RemoteException{Exception: "AccessControlException"}}
	assert.False(t, IsStandbyException(other))
	assert.False(t, IsStandbyException(errors.New("transport")))
}

func TestDataErrorRecovery(t *testing.T) {
	inner := errorf(KindRemoteException, "standby")
	de := &DataError{Err: inner, Data: []byte("payload")}

	assert.Equal(t, []byte("payload"), de.Data)
	assert.Equal(t, inner.Error(), de.Error())
	assert.Same(t, inner, errors.Unwrap(de).(*Error))

	// dropData strips the payload wrapper; other errors pass through.
	assert.Same(t, inner, dropData(de).(*Error))
	assert.Same(t, inner, dropData(inner).(*Error))
}

func TestRemoteExceptionMapsToErrno(t *testing.T) {
	notFound := &RemoteException{
		Exception:     "FileNotFoundException",
		JavaClassName: JavaClassNameFileNotFoundException,
		Message:       "File does not exist: /nope",
	}
	assert.True(t, errors.Is(notFound, syscall.ENOENT))
	assert.Contains(t, notFound.Error(), "File does not exist")

	denied := &RemoteException{
		Exception:     "AccessControlException",
		JavaClassName: JavaClassNameAccessControlException,
	}
	assert.True(t, errors.Is(denied, syscall.EPERM))
}
