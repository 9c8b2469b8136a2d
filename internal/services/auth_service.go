package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/configs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/interfaces"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/models"
	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/utils"
)

const (
	discordAuthorizeEndpoint = "https://discord.com/api/oauth2/authorize"
	discordTokenEndpoint     = "https://discord.com/api/oauth2/token"
	discordUserEndpoint      = "https://discord.com/api/users/@me"
)

type AuthService struct {
	userRepo   interfaces.UserStore
	config     *configs.Config
	httpClient *http.Client
}

func NewAuthService(userRepo interfaces.UserStore, config *configs.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		config:     config,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LoginURL builds the Discord authorize redirect for the identify scope.
func (as *AuthService) LoginURL() string {
	query := url.Values{}
	query.Set("client_id", as.config.Viper.GetString("discord.client_id"))
	query.Set("redirect_uri", as.config.Viper.GetString("discord.redirect_uri"))
	query.Set("response_type", "code")
	query.Set("scope", "identify")
	return fmt.Sprintf("%s?%s", discordAuthorizeEndpoint, query.Encode())
}

// Authenticate exchanges the OAuth code, bootstraps the user row on first
// login and issues the service's own JWT. Banned users are refused a token.
func (as *AuthService) Authenticate(code string) (*models.AuthResponse, []error) {
	discordID, err := as.exchangeCode(code)
	if err != nil {
		return nil, []error{err}
	}

	user, err := as.userRepo.GetByDiscordID(discordID)
	if err != nil {
		if err != errs.ErrUserNotFound {
			return nil, []error{err}
		}
		user, err = as.userRepo.Create(&models.User{DiscordID: discordID})
		if err != nil {
			return nil, []error{err}
		}
	}

	if user.Banned {
		return nil, []error{errs.ErrUserBanned}
	}

	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, err := utils.CreateJwtToken(
		user.ID,
		user.DiscordID,
		user.Moderator,
		[]byte(as.config.Viper.GetString("jwt.secret")),
		expiration,
	)
	if err != nil {
		return nil, []error{err}
	}

	return &models.AuthResponse{
		DiscordID:   user.DiscordID,
		IsModerator: user.Moderator,
		AccessToken: token,
		ExpireTime:  expiration.Unix(),
	}, nil
}

func (as *AuthService) exchangeCode(code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", as.config.Viper.GetString("discord.client_id"))
	form.Set("client_secret", as.config.Viper.GetString("discord.client_secret"))
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", as.config.Viper.GetString("discord.redirect_uri"))

	resp, err := as.httpClient.Post(
		discordTokenEndpoint,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errs.ErrUnauthorized
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", err
	}

	return as.fetchDiscordID(tokenResponse.AccessToken)
}

func (as *AuthService) fetchDiscordID(accessToken string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, discordUserEndpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := as.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errs.ErrUnauthorized
	}

	var discordUser struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&discordUser); err != nil {
		return "", err
	}
	if discordUser.ID == "" {
		return "", errs.ErrUnauthorized
	}
	return discordUser.ID, nil
}
