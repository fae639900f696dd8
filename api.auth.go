// Copyright 2022 The searKing Author. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package webhdfs

// See: https://hadoop.apache.org/docs/current/hadoop-project-dist/hadoop-hdfs/WebHDFS.html#Authentication
// When security is off, the authenticated user is the username specified in the user.name query parameter.
// When security is on, authentication is performed by either Hadoop delegation token or Kerberos SPNEGO.
// If a token is set in the delegation query parameter, the authenticated user is the user encoded in the token.
// This library passes delegation tokens verbatim; SPNEGO negotiation is out of its scope.
type Authentication struct {
	// Delegation
	// Name				delegation
	// Description		The delegation token used for authentication.
	// Type				String
	// Default Value	<empty>
	// Valid Values		An encoded token.
	// Note that delegation tokens are encoded as a URL safe string;
	// see encodeToUrlString() and decodeFromUrlString(String) in org.apache.hadoop.security.token.Token for the details of the encoding.
	Delegation *string
}

func (a *Authentication) authentication() *Authentication { return a }

// merged overlays a onto defaults.
func (a *Authentication) merged(defaults Authentication) Authentication {
	out := defaults
	if a.Delegation != nil {
		out.Delegation = a.Delegation
	}
	return out
}
