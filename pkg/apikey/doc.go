// Package apikey restricts programmatic access to a declared capability
// set. Capabilities are "action:resource" strings (read:pets,
// write:appointments) granted to an API key when it is issued.
//
// The scope registry is computed from the resource list, and so are the
// bundles: the read-only bundle filters the registry by action, which
// makes "read-only contains no write scopes" a construction guarantee
// rather than something to re-check as resources are added.
//
//	grant, err := reader.GrantByKeyID(ctx, keyID)
//	if err != nil {
//		// unknown key: reject the request
//	}
//
//	if err := apikey.Authorize(grant, time.Now().UTC(), "write:pets"); err != nil {
//		// revoked, expired, or missing scope
//	}
//
// ValidateScopes classifies unknown scope strings as invalid data rather
// than failing, so callers decide whether to reject the whole request or
// drop the invalid entries. Key hashing and decoding are out of scope;
// the authorizer only sees the decoded grant.
package apikey
