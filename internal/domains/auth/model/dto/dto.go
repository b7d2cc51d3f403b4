package dto

import (
	"crew/infras/jwt"
)

type LoginRequest struct {
	MechanicID string `json:"mechanic_id" validate:"required"`
	Credential string `json:"credential" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	MechanicID   string `json:"mechanic_id"`
	MechanicName string `json:"mechanic_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *LoginResponse) FromTokenPair(mechanicID, mechanicName string, pair *jwt.TokenPair) {
	r.MechanicID = mechanicID
	r.MechanicName = mechanicName
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}
