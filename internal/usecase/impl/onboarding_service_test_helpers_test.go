package impl

import (
	"context"
	"io"
	"log/slog"

	"onevisit/config"
	"onevisit/internal/domain/repository"
	mockRepo "onevisit/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultBusinessID string) *config.Config {
	cfg := &config.Config{}
	cfg.Onboarding.DefaultBusinessID = defaultBusinessID
	cfg.Onboarding.LandingBaseURL = "https://onboard.example.com/join"

	return cfg
}

// stubRepoFactory hands out the fixed mock repositories it was built with,
// standing in for the transaction-bound factory of the real manager.
type stubRepoFactory struct {
	customerRepo  repository.CustomerRepository
	visitRepo     repository.VisitRepository
	analyticsRepo repository.AnalyticsRepository
	businessRepo  repository.BusinessRepository
	userRepo      repository.UserRepository
	campaignRepo  repository.CampaignRepository
	messageRepo   repository.MessageRepository
}

func (f *stubRepoFactory) CustomerRepo() repository.CustomerRepository   { return f.customerRepo }
func (f *stubRepoFactory) VisitRepo() repository.VisitRepository         { return f.visitRepo }
func (f *stubRepoFactory) AnalyticsRepo() repository.AnalyticsRepository { return f.analyticsRepo }
func (f *stubRepoFactory) BusinessRepo() repository.BusinessRepository   { return f.businessRepo }
func (f *stubRepoFactory) UserRepo() repository.UserRepository           { return f.userRepo }
func (f *stubRepoFactory) CampaignRepo() repository.CampaignRepository   { return f.campaignRepo }
func (f *stubRepoFactory) MessageRepo() repository.MessageRepository     { return f.messageRepo }

// stubTxManager invokes the transactional function directly against a fixed
// factory so the function's own error propagates unchanged.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// txMocks bundles the per-repo mocks reachable through a stub transaction.
type txMocks struct {
	customerRepo  *mockRepo.MockCustomerRepository
	visitRepo     *mockRepo.MockVisitRepository
	analyticsRepo *mockRepo.MockAnalyticsRepository
	messageRepo   *mockRepo.MockMessageRepository
	campaignRepo  *mockRepo.MockCampaignRepository
}

func newStubTxManager(mocks txMocks) *stubTxManager {
	factory := &stubRepoFactory{}
	if mocks.customerRepo != nil {
		factory.customerRepo = mocks.customerRepo
	}
	if mocks.visitRepo != nil {
		factory.visitRepo = mocks.visitRepo
	}
	if mocks.analyticsRepo != nil {
		factory.analyticsRepo = mocks.analyticsRepo
	}
	if mocks.messageRepo != nil {
		factory.messageRepo = mocks.messageRepo
	}
	if mocks.campaignRepo != nil {
		factory.campaignRepo = mocks.campaignRepo
	}

	return &stubTxManager{factory: factory}
}
