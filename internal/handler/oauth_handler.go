package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"familytree/backend/internal/config"
	"familytree/backend/internal/database"
	"familytree/backend/internal/models"
	"familytree/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// OAuthProvider bundles an oauth2 config with its user-info endpoint.
type OAuthProvider struct {
	Config      *oauth2.Config
	UserInfoURL string
}

type oauthUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// oauthProviders returns the configured providers. A provider without
// credentials is simply absent.
func oauthProviders() map[string]OAuthProvider {
	cfg := config.AppConfig
	providers := make(map[string]OAuthProvider)

	if cfg.FacebookClientID != "" {
		providers["facebook"] = OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		}
	}
	if cfg.GoogleClientID != "" {
		providers["google"] = OAuthProvider{
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		}
	}
	return providers
}

// StartOAuth godoc
// @Summary      Start an OAuth sign-in
// @Description  Redirects to the provider's consent screen. Supported providers: facebook, google.
// @Tags         auth
// @Param        provider path string true "OAuth provider"
// @Success      302
// @Failure      400  {object}  ErrorResponse "Provider not configured"
// @Router       /auth/oauth/{provider} [get]
func StartOAuth(c *gin.Context) {
	provider, ok := oauthProviders()[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth provider not configured"})
		return
	}

	state := uuid.NewString()
	c.SetCookie("oauth_state", state, 600, "/", "", false, true)

	oauthConfig := *provider.Config
	oauthConfig.RedirectURL = oauthRedirectURL(c)

	c.Redirect(http.StatusFound, oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// OAuthCallback godoc
// @Summary      OAuth provider callback
// @Description  Exchanges the authorization code, matches the provider account to an existing user by email, and redirects back to the app with a token. Accounts must be created through registration first, since a family connection is mandatory there.
// @Tags         auth
// @Param        provider path  string true  "OAuth provider"
// @Param        code     query string true  "Authorization code"
// @Param        state    query string true  "Opaque state"
// @Success      302
// @Failure      400  {object}  ErrorResponse "Invalid state or code"
// @Failure      403  {object}  ErrorResponse "No account for this email"
// @Router       /auth/oauth/{provider}/callback [get]
func OAuthCallback(c *gin.Context) {
	provider, ok := oauthProviders()[c.Param("provider")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth provider not configured"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	stateCookie, err := c.Cookie("oauth_state")
	if err != nil || stateCookie == "" || stateCookie != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}

	oauthConfig := *provider.Config
	oauthConfig.RedirectURL = oauthRedirectURL(c)

	oauthToken, err := oauthConfig.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := fetchOAuthUserInfo(c, &oauthConfig, oauthToken, provider.UserInfoURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if info.Email == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Provider did not return an email address"})
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", info.Email).First(&user).Error; err != nil {
		// OAuth never creates accounts: registration is the only entry
		// point, because the family connection is mandatory there.
		c.JSON(http.StatusForbidden, gin.H{"error": "No account for this email, please register first"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/?token=%s", config.AppConfig.AppBaseURL, token))
}

func fetchOAuthUserInfo(c *gin.Context, oauthConfig *oauth2.Config, token *oauth2.Token, userInfoURL string) (oauthUserInfo, error) {
	var info oauthUserInfo

	client := oauthConfig.Client(c.Request.Context(), token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return info, err
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return info, err
	}
	return info, nil
}

func oauthRedirectURL(c *gin.Context) string {
	return fmt.Sprintf("%s/api/v1/auth/oauth/%s/callback", config.AppConfig.AppBaseURL, c.Param("provider"))
}
