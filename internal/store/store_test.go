package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillfit/internal/types"
)

func TestPutAndGet(t *testing.T) {
	s := New()

	id := s.Put("Python developer with five years of experience.", "resume")
	require.NotEmpty(t, id)

	doc := s.Get(id)
	require.NotNil(t, doc)
	assert.Equal(t, id, doc.ID)
	assert.Equal(t, "resume", doc.SourceType)
	assert.Contains(t, doc.Text, "Python")
	assert.Nil(t, doc.Extracted)
}

func TestGet_UnknownID(t *testing.T) {
	s := New()
	assert.Nil(t, s.Get("no-such-id"))
}

func TestGet_ExpiredRemovedOnRead(t *testing.T) {
	s := NewWithTTL(time.Hour)

	current := time.Now()
	s.now = func() time.Time { return current }

	id := s.Put("some resume text", "resume")

	current = current.Add(2 * time.Hour)

	assert.Nil(t, s.Get(id))
	assert.Equal(t, 0, s.Count())
}

func TestGet_WithinTTL(t *testing.T) {
	s := NewWithTTL(time.Hour)

	current := time.Now()
	s.now = func() time.Time { return current }

	id := s.Put("some resume text", "resume")

	current = current.Add(59 * time.Minute)

	assert.NotNil(t, s.Get(id))
}

func TestSetExtraction(t *testing.T) {
	s := New()

	id := s.Put("job description text here", "job_description")
	result := &types.SkillExtractionResult{ExtractionMethod: "llm"}

	require.True(t, s.SetExtraction(id, result))

	doc := s.Get(id)
	require.NotNil(t, doc)
	assert.Equal(t, result, doc.Extracted)
}

func TestSetExtraction_MissingDocument(t *testing.T) {
	s := New()
	assert.False(t, s.SetExtraction("no-such-id", &types.SkillExtractionResult{}))
}

func TestDelete(t *testing.T) {
	s := New()

	id := s.Put("text to be deleted soon", "resume")

	assert.True(t, s.Delete(id))
	assert.Nil(t, s.Get(id))
	assert.False(t, s.Delete(id))
}

func TestCleanupExpired(t *testing.T) {
	s := NewWithTTL(time.Hour)

	current := time.Now()
	s.now = func() time.Time { return current }

	old := s.Put("an older document text", "resume")
	current = current.Add(2 * time.Hour)
	fresh := s.Put("a fresh document text", "resume")

	removed := s.CleanupExpired()
	assert.Equal(t, 1, removed)
	assert.Nil(t, s.Get(old))
	assert.NotNil(t, s.Get(fresh))
}

func TestCount(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Count())

	s.Put("first stored document", "resume")
	s.Put("second stored document", "job_description")
	assert.Equal(t, 2, s.Count())
}
