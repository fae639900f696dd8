// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

import (
	"net/url"

	"go.uber.org/zap"
)

// FOState selects which NameNode entrypoint an operation starts at. HDFS HA
// deploys NameNodes in active/standby pairs; the state memoizes the node
// that last answered so the next operation goes there directly.
type FOState int

const (
	// FOStatePrimary targets the configured entrypoint.
	FOStatePrimary FOState = iota
	// FOStateAlt targets the alternate entrypoint, falling back to the
	// primary when none is configured.
	FOStateAlt
)

func (s FOState) String() string {
	if s == FOStateAlt {
		return "ALT"
	}
	return "PRIMARY"
}

func (s FOState) flip() FOState {
	if s == FOStatePrimary {
		return FOStateAlt
	}
	return FOStatePrimary
}

// failover runs one operation attempt against the entrypoint named by state.
// When the attempt fails with a StandbyException and an alternate entrypoint
// is configured, the state flips and the identical request is retried exactly
// once; the retry calls attempt again, so a write resubmits the same
// aggregated payload bytes. The DataError wrapper is stripped from any
// returned error. Every other failure is returned as-is. The returned state names
// the entrypoint of the last attempt, so callers can memoize where the
// active NameNode lives.
func (c *Client) failover(state FOState, attempt func(base *url.URL) error) (FOState, error) {
	err := attempt(c.endpointURL(state))
	if err == nil {
		return state, nil
	}
	if !IsStandbyException(err) || !c.HasAlt() {
		return state, dropData(err)
	}

	state = state.flip()
	c.opts.Logger.Debug("standby NameNode, failing over", zap.Stringer("fostate", state))
	if err := attempt(c.endpointURL(state)); err != nil {
		return state, dropData(err)
	}
	return state, nil
}
