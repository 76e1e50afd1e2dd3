// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// TokenHookSession carries the claim overrides hydra merges into the tokens
// it is about to issue.
type TokenHookSession struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}

// TokenHookResponse is the body hydra expects back from the token hook.
type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}
