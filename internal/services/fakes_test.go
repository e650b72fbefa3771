package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"simsem/internal/infra"
	"simsem/internal/models/db_models"
)

// In-memory stand-ins for the repository, backend, cache, and mailer.

type fakeDraftRepo struct {
	mu     sync.Mutex
	drafts map[string]*db_models.WizardDraft
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: map[string]*db_models.WizardDraft{}}
}

func (r *fakeDraftRepo) Create(_ context.Context, draft *db_models.WizardDraft) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	copied := *draft
	r.drafts[draft.ID.String()] = &copied
	return draft.ID, nil
}

func (r *fakeDraftRepo) Update(_ context.Context, draft *db_models.WizardDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *draft
	r.drafts[draft.ID.String()] = &copied
	return nil
}

func (r *fakeDraftRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id.String())
	return nil
}

func (r *fakeDraftRepo) GetByID(_ context.Context, id string) (*db_models.WizardDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	draft, ok := r.drafts[id]
	if !ok {
		return nil, nil
	}
	copied := *draft
	return &copied, nil
}

func (r *fakeDraftRepo) List(_ context.Context, kind string, page, pageSize int) ([]db_models.WizardDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []db_models.WizardDraft
	for _, draft := range r.drafts {
		if kind == "" || draft.Kind == kind {
			out = append(out, *draft)
		}
	}
	return out, nil
}

type createdObject struct {
	Class string
	Body  interface{}
}

type fakeParse struct {
	mu        sync.Mutex
	created   []createdObject
	createErr error

	queryResults func(class string, where map[string]interface{}) interface{}
	queryCalls   int

	functionResult interface{}
	functionErr    error
	functionCalls  []interface{}
}

func (p *fakeParse) CreateObject(_ context.Context, class string, body interface{}) (infra.CreateObjectResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.createErr != nil {
		return infra.CreateObjectResult{}, p.createErr
	}
	p.created = append(p.created, createdObject{Class: class, Body: body})
	return infra.CreateObjectResult{ObjectID: fmt.Sprintf("obj-%d", len(p.created))}, nil
}

func (p *fakeParse) QueryObjects(_ context.Context, class string, where map[string]interface{}, _ int, out interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queryCalls++
	if p.queryResults == nil {
		return nil
	}
	return copyJSON(p.queryResults(class, where), out)
}

func (p *fakeParse) CallFunction(_ context.Context, _ string, params interface{}, out interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.functionCalls = append(p.functionCalls, params)
	if p.functionErr != nil {
		return p.functionErr
	}
	if p.functionResult == nil {
		return nil
	}
	return copyJSON(p.functionResult, out)
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
	gets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	value, ok := c.data[key]
	return value, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = value
}

func copyJSON(in interface{}, out interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

type fakeMail struct {
	mu        sync.Mutex
	delivered []string
}

func (m *fakeMail) SendApplicationReceived(to, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered = append(m.delivered, to)
	return nil
}
