// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Proxy_Users
type ProxyUser struct {
	// Name				user.name
	// Description		The authenticated user; see Authentication.
	// Type				String
	// Default Value	null
	// Valid Values		Any valid username.
	// Syntax			Any string.
	Username *string

	// Name				doas
	// Description		Allowing a proxy user to do as another user.
	// Type				String
	// Default Value	null
	// Valid Values		Any valid username.
	// Syntax			Any string.
	DoAs *string
}

func (p *ProxyUser) proxyUser() *ProxyUser { return p }

// merged overlays p onto defaults, field by field.
func (p *ProxyUser) merged(defaults ProxyUser) ProxyUser {
	out := defaults
	if p.Username != nil {
		out.Username = p.Username
	}
	if p.DoAs != nil {
		out.DoAs = p.DoAs
	}
	return out
}
