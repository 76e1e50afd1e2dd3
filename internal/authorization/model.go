// Copyright 2026 DSA Digital Platform
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const authModelDSL = `model
  schema 1.1

type user

type tenant
  relations
    define owner: [user]
    define admin: [user]
    define member: [user]
    define can_manage: owner or admin
    define can_view: owner or admin or member
`

type AuthorizationModelProvider struct {
	dsl string
}

func NewAuthorizationModelProvider() *AuthorizationModelProvider {
	return &AuthorizationModelProvider{dsl: authModelDSL}
}

func (p *AuthorizationModelProvider) GetModel() (*fga.AuthorizationModel, error) {
	modelJSON, err := transformer.TransformDSLToJSON(p.dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to transform authorization model DSL: %w", err)
	}

	var model fga.AuthorizationModel
	if err := json.Unmarshal([]byte(modelJSON), &model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authorization model: %w", err)
	}

	return &model, nil
}
