package service

import (
	"EcoLoyalty/internal/api/config"
	"EcoLoyalty/internal/api/dto"
	"EcoLoyalty/internal/model"
	"EcoLoyalty/internal/pkg/customerapi"
	"EcoLoyalty/internal/pkg/facebook"
	"EcoLoyalty/internal/pkg/kafka"
	"EcoLoyalty/internal/pkg/scoreapi"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeIdentityRepo struct {
	mappings map[string]*model.EmailFacebookMapping
	calls    int
}

func (s *fakeIdentityRepo) GetByEmail(_ context.Context, email string) (*model.EmailFacebookMapping, error) {
	s.calls++
	return s.mappings[email], nil
}

type fakeProcessedRepo struct {
	existing map[string]struct{}
	created  []string
	calls    int
}

func (s *fakeProcessedRepo) GetExistingPostIDs(_ context.Context, postIDs []string) ([]string, error) {
	s.calls++
	var result []string
	for _, id := range postIDs {
		if _, ok := s.existing[id]; ok {
			result = append(result, id)
		}
	}
	return result, nil
}

func (s *fakeProcessedRepo) CreateIfAbsent(_ context.Context, record *model.PostLoyaltyPoints) (bool, error) {
	if _, ok := s.existing[record.PostID]; ok {
		return false, nil
	}
	s.existing[record.PostID] = struct{}{}
	s.created = append(s.created, record.PostID)
	return true, nil
}

func (s *fakeProcessedRepo) GetByPostID(_ context.Context, postID string) (*model.PostLoyaltyPoints, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeProcessedRepo) ListByFacebookUserID(_ context.Context, _ string) ([]*model.PostLoyaltyPoints, error) {
	return nil, nil
}

type fakeFacebookAPI struct {
	mu            sync.Mutex
	taggedPosts   []facebook.TaggedPost
	metadata      map[string]*facebook.PostMetadata
	failMetadata  map[string]bool
	taggedCalls   int
	metadataCalls int
}

func (s *fakeFacebookAPI) GetTaggedPosts(_ context.Context, _ string) ([]facebook.TaggedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taggedCalls++
	return s.taggedPosts, nil
}

func (s *fakeFacebookAPI) GetPostMetadata(_ context.Context, postID string) (*facebook.PostMetadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metadataCalls++
	if s.failMetadata[postID] {
		return nil, errors.New("metadata fetch failed")
	}
	meta, ok := s.metadata[postID]
	if !ok {
		return nil, errors.New("post not found")
	}
	return meta, nil
}

type fakeScoreAPI struct {
	scores     map[string]float64
	failTopics map[string]bool
	calls      []*scoreapi.ContentData
}

func (s *fakeScoreAPI) Analyze(_ context.Context, content *scoreapi.ContentData) (*scoreapi.ScoreResponse, error) {
	s.calls = append(s.calls, content)
	if s.failTopics[content.Content.Caption] {
		return nil, errors.New("score api unavailable")
	}
	score, ok := s.scores[content.Content.Caption]
	if !ok {
		score = 0.5
	}
	return &scoreapi.ScoreResponse{RelevanceScore: score, Confidence: 0.9}, nil
}

type fakeCustomerAPI struct {
	customerIDs map[string]string
	balances    map[string]int
	adjusted    []int
}

func (s *fakeCustomerAPI) GetCustomerIDByEmail(_ context.Context, email string) (string, error) {
	return s.customerIDs[email], nil
}

func (s *fakeCustomerAPI) GetCustomer(_ context.Context, id string) (*customerapi.Customer, error) {
	return &customerapi.Customer{CustomerID: id, CurrentAvailablePoints: s.balances[id]}, nil
}

func (s *fakeCustomerAPI) AdjustPoints(_ context.Context, id string, delta int, _ string) (*customerapi.PointsBalance, error) {
	s.adjusted = append(s.adjusted, delta)
	s.balances[id] += delta
	return &customerapi.PointsBalance{CustomerID: id, CurrentAvailablePoints: s.balances[id]}, nil
}

type fakeProducer struct {
	events []*kafka.ClaimEvent
}

func (s *fakeProducer) PublishClaim(_ context.Context, evt *kafka.ClaimEvent) error {
	s.events = append(s.events, evt)
	return nil
}

func (s *fakeProducer) Close() error { return nil }

// ---- helpers ----

func newTestConfig() *config.Config {
	return &config.Config{
		Facebook: config.FacebookConfig{
			PageID:        "704633709403601",
			TagFilter:     "user",
			CampaignTopic: "raincoat",
		},
		Points: config.PointsConfig{Multiplier: 100},
	}
}

func newTestService(identity *fakeIdentityRepo, processed *fakeProcessedRepo, fb *fakeFacebookAPI, score *fakeScoreAPI) SocialMediaService {
	return NewSocialMediaService(identity, processed, fb, score,
		&fakeCustomerAPI{customerIDs: map[string]string{}, balances: map[string]int{}},
		&fakeProducer{}, newTestConfig())
}

func mappingFor(email, fbUserID string) *fakeIdentityRepo {
	return &fakeIdentityRepo{mappings: map[string]*model.EmailFacebookMapping{
		email: {Email: email, FacebookUserID: fbUserID, IsActive: true},
	}}
}

// ---- tests ----

func TestGetEligiblePostScoresHappyPath(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{}}
	fb := &fakeFacebookAPI{
		taggedPosts: []facebook.TaggedPost{
			{ID: "555_555_a", Message: "great #EcoDrizzle"},
			{ID: "999_777_b", Message: "other"},
		},
		metadata: map[string]*facebook.PostMetadata{
			"555_555_a": {ID: "555_555_a", Message: "great #EcoDrizzle"},
		},
	}
	score := &fakeScoreAPI{scores: map[string]float64{"great": 0.82}}

	svc := newTestService(identity, processed, fb, score)
	results, err := svc.GetEligiblePostScores(context.Background(), "user@x.com")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "555_555_a", results[0].PostID)
	assert.Equal(t, "555", results[0].UserID)
	assert.Equal(t, 0.82, results[0].Score)
	assert.Equal(t, "great", results[0].Message)
}

func TestGetEligiblePostScoresNoMapping(t *testing.T) {
	identity := &fakeIdentityRepo{mappings: map[string]*model.EmailFacebookMapping{}}
	processed := &fakeProcessedRepo{existing: map[string]struct{}{}}
	fb := &fakeFacebookAPI{}
	score := &fakeScoreAPI{}

	svc := newTestService(identity, processed, fb, score)
	_, err := svc.GetEligiblePostScores(context.Background(), "unknown@x.com")

	assert.ErrorIs(t, err, ErrMappingNotFound)
	// 身份未命中时不得触发任何外部调用
	assert.Zero(t, fb.taggedCalls)
	assert.Zero(t, fb.metadataCalls)
	assert.Empty(t, score.calls)
	assert.Zero(t, processed.calls)
}

func TestGetEligiblePostScoresAllProcessed(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{
		"555_111_a": {},
		"555_222_b": {},
	}}
	fb := &fakeFacebookAPI{
		taggedPosts: []facebook.TaggedPost{
			{ID: "555_111_a"},
			{ID: "555_222_b"},
		},
	}
	score := &fakeScoreAPI{}

	svc := newTestService(identity, processed, fb, score)
	results, err := svc.GetEligiblePostScores(context.Background(), "user@x.com")

	require.NoError(t, err)
	assert.Empty(t, results)
	// 全部已处理时短路，不拉详情也不打分
	assert.Zero(t, fb.metadataCalls)
	assert.Empty(t, score.calls)
}

func TestGetEligiblePostScoresPerPostScoringFailure(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{}}
	fb := &fakeFacebookAPI{
		taggedPosts: []facebook.TaggedPost{
			{ID: "555_111_a"},
			{ID: "555_222_b"},
		},
		metadata: map[string]*facebook.PostMetadata{
			"555_111_a": {ID: "555_111_a", Message: "first post"},
			"555_222_b": {ID: "555_222_b", Message: "second post"},
		},
	}
	score := &fakeScoreAPI{
		scores:     map[string]float64{"first post": 0.7},
		failTopics: map[string]bool{"second post": true},
	}

	svc := newTestService(identity, processed, fb, score)
	results, err := svc.GetEligiblePostScores(context.Background(), "user@x.com")

	require.NoError(t, err)
	// 单条打分失败不减少结果数量
	require.Len(t, results, 2)

	byID := make(map[string]*dto.PostScoreDTO, len(results))
	for _, result := range results {
		byID[result.PostID] = result
	}
	assert.Equal(t, 0.7, byID["555_111_a"].Score)
	assert.Equal(t, float64(0), byID["555_222_b"].Score)
	assert.Equal(t, "failed to score post", byID["555_222_b"].Details)
}

func TestGetEligiblePostScoresMetadataFailureDropsPost(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{}}
	fb := &fakeFacebookAPI{
		taggedPosts: []facebook.TaggedPost{
			{ID: "555_111_a"},
			{ID: "555_222_b"},
		},
		metadata: map[string]*facebook.PostMetadata{
			"555_111_a": {ID: "555_111_a", Message: "alive"},
		},
		failMetadata: map[string]bool{"555_222_b": true},
	}
	score := &fakeScoreAPI{scores: map[string]float64{"alive": 0.6}}

	svc := newTestService(identity, processed, fb, score)
	results, err := svc.GetEligiblePostScores(context.Background(), "user@x.com")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "555_111_a", results[0].PostID)
}

func TestExtractTaggedPosts(t *testing.T) {
	rawPosts := []facebook.TaggedPost{
		{ID: "555_777", Message: "tagged", TaggedTime: "2024-01-20T10:30:00+0000"},
		{ID: "999_777", Message: "someone else"},
		{ID: "malformed"},
	}

	candidates := extractTaggedPosts(rawPosts, "555")
	require.Len(t, candidates, 1)
	assert.Equal(t, "555_777", candidates[0].PostID)
	assert.Equal(t, "777", candidates[0].UserID)
	assert.Equal(t, "tagged", candidates[0].Message)

	// 页面模式下与页面ID比较
	pageCandidates := extractTaggedPosts(rawPosts, "999")
	require.Len(t, pageCandidates, 1)
	assert.Equal(t, "999_777", pageCandidates[0].PostID)
}

func TestExtractTaggedPostsIdempotent(t *testing.T) {
	rawPosts := []facebook.TaggedPost{
		{ID: "555_777", Message: "a"},
		{ID: "555_888", Message: "b"},
		{ID: "111_222", Message: "c"},
	}

	first := extractTaggedPosts(rawPosts, "555")
	second := extractTaggedPosts(rawPosts, "555")
	assert.Equal(t, first, second)
}

func TestFilterNewPostsSubsetAndOrder(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{
		"555_222_b": {},
	}}
	svc := newTestService(identity, processed, &fakeFacebookAPI{}, &fakeScoreAPI{}).(*SocialMediaServiceImpl)

	candidates := []candidatePost{
		{PostID: "555_111_a"},
		{PostID: "555_222_b"},
		{PostID: "555_333_c"},
	}

	newPosts, err := svc.filterNewPosts(context.Background(), candidates)
	require.NoError(t, err)

	// 输出是输入的子集且保持顺序，不包含已处理ID
	require.Len(t, newPosts, 2)
	assert.Equal(t, "555_111_a", newPosts[0].PostID)
	assert.Equal(t, "555_333_c", newPosts[1].PostID)

	// 空输入直接短路，不查库
	processed.calls = 0
	empty, err := svc.filterNewPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Zero(t, processed.calls)
}

func TestClaimPostPointsNotEligible(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{}}

	svc := newTestService(identity, processed, &fakeFacebookAPI{}, &fakeScoreAPI{})
	_, err := svc.ClaimPostPoints(context.Background(), "user@x.com", &dto.ClaimPointsDTO{PostID: "999_777_b"})

	assert.ErrorIs(t, err, ErrPostNotEligible)
}

func TestClaimPostPointsAlreadyClaimed(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	processed := &fakeProcessedRepo{existing: map[string]struct{}{
		"555_777_a": {},
	}}

	svc := newTestService(identity, processed, &fakeFacebookAPI{}, &fakeScoreAPI{})
	_, err := svc.ClaimPostPoints(context.Background(), "user@x.com", &dto.ClaimPointsDTO{PostID: "555_777_a"})

	assert.ErrorIs(t, err, ErrPostAlreadyClaimed)
}

func TestGetConnectedAccount(t *testing.T) {
	identity := mappingFor("user@x.com", "555")
	svc := newTestService(identity, &fakeProcessedRepo{existing: map[string]struct{}{}}, &fakeFacebookAPI{}, &fakeScoreAPI{})

	account, err := svc.GetConnectedAccount(context.Background(), "user@x.com")
	require.NoError(t, err)
	assert.Equal(t, "facebook", account.Platform)
	assert.Equal(t, "555", account.FacebookUserID)

	_, err = svc.GetConnectedAccount(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, ErrMappingNotFound)
}
