package recaptcha

import (
	"context"

	"github.com/fuzzleprime/ad-serving-api/infrastructure/integrator/recaptcha/recaptchaclient"
	"github.com/fuzzleprime/ad-serving-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Verifier é a prova de humanidade abstraída: recebe um token opaco de uso
// único fornecido pelo cliente e devolve passa/não-passa com detalhes
type Verifier interface {
	Verify(ctx context.Context, token string) (*Verification, error)
}

type Verification struct {
	Success bool
	Score   float64
	Details []string
}

type Service struct {
	config *config.Config
	client recaptchaclient.Client
}

func New(cfg *config.Config, client recaptchaclient.Client) Verifier {
	return &Service{
		config: cfg,
		client: client,
	}
}

func (s *Service) Verify(ctx context.Context, token string) (*Verification, error) {
	resp, err := s.client.SiteVerify(ctx, token)
	if err != nil {
		// Falha de transporte ou timeout conta como falha de verificação
		return nil, err
	}

	if !resp.Success {
		logrus.WithFields(logrus.Fields{
			"error_codes": resp.ErrorCodes,
			"hostname":    resp.Hostname,
		}).Warn("Verificação de reCAPTCHA recusada")
	}

	return &Verification{
		Success: resp.Success,
		Score:   resp.Score,
		Details: resp.ErrorCodes,
	}, nil
}
