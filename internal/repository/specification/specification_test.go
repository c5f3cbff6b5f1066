package specification

import (
	"testing"

	"expert-session-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestExpertSpecifications(t *testing.T) {
	e := &entity.Expert{
		Id:     "e1",
		Name:   "Dr. Sarah Chen",
		Skills: []string{"Python", "Machine Learning"},
		Tags:   []string{"Tech", "Career"},
	}

	tests := []struct {
		name string
		spec Specification[entity.Expert]
		want bool
	}{
		{name: "keyword in name", spec: ExpertByKeyword{Keyword: "sarah"}, want: true},
		{name: "keyword in skill", spec: ExpertByKeyword{Keyword: "machine"}, want: true},
		{name: "keyword miss", spec: ExpertByKeyword{Keyword: "calculus"}, want: false},
		{name: "blank keyword", spec: ExpertByKeyword{Keyword: "  "}, want: true},
		{name: "tag any case", spec: ExpertByTag{Tag: "tech"}, want: true},
		{name: "tag miss", spec: ExpertByTag{Tag: "Fitness"}, want: false},
		{name: "id set", spec: ExpertByIds{Ids: []string{"e3", "e1"}}, want: true},
		{name: "id set miss", spec: ExpertByIds{Ids: []string{"e3"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.IsSatisfiedBy(e))
		})
	}
}

func TestSatisfiesAll(t *testing.T) {
	s := &entity.Session{Id: "s1", ClientId: "c1", ExpertId: "e1", Status: entity.SessionStatusCompleted}

	assert.True(t, SatisfiesAll(s))
	assert.True(t, SatisfiesAll[entity.Session](s,
		SessionByClient{ClientId: "c1"},
		SessionByStatus{Statuses: []entity.SessionStatus{entity.SessionStatusCompleted}},
	))
	assert.False(t, SatisfiesAll[entity.Session](s,
		SessionByClient{ClientId: "c1"},
		SessionByExpert{ExpertId: "e2"},
	))
}
