// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

// Authorization model, one relation per role of the closed role set plus the
// derived permissions the API gates on.
const v0Schema = `model
  schema 1.1

type user

type organization
  relations
    define admin: [user]
    define manager: [user]
    define tester: [user]
    define viewer: [user]
    define can_manage: admin or manager
    define can_view: admin or manager or tester or viewer
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	modelJSON, err := transformer.TransformDSLToJSON(v0Schema)
	if err != nil {
		panic(err)
	}

	var model fga.AuthorizationModel
	if err := json.Unmarshal([]byte(modelJSON), &model); err != nil {
		panic(err)
	}

	return &model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
