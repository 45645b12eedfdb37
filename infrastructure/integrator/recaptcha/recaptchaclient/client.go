package recaptchaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fuzzleprime/ad-serving-api/internal/config"
)

type Client interface {
	SiteVerify(ctx context.Context, token string) (*SiteVerifyResponse, error)
}

// SiteVerifyResponse é a resposta do endpoint siteverify do reCAPTCHA
type SiteVerifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

type RecaptchaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RecaptchaClient{
		httpClient: &http.Client{
			// Um timeout estourado é tratado como falha de verificação pelo
			// chamador, nunca como sucesso silencioso
			Timeout: cfg.Recaptcha.VerifyTimeout,
		},
		config: cfg,
	}
}

// SiteVerify troca o token fornecido pelo cliente por um veredito do serviço
// externo de verificação
func (c *RecaptchaClient) SiteVerify(ctx context.Context, token string) (*SiteVerifyResponse, error) {
	form := url.Values{}
	form.Set("secret", c.config.Recaptcha.SecretKey)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Recaptcha.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição de verificação: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar serviço de verificação: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serviço de verificação respondeu status %s", resp.Status)
	}

	verifyResponse := &SiteVerifyResponse{}
	if err := json.NewDecoder(resp.Body).Decode(verifyResponse); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de verificação: %w", err)
	}

	return verifyResponse, nil
}
