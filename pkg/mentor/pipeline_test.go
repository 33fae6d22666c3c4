package mentor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"ai-course-be/internal/constant"
	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/memory"
	"ai-course-be/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NoContextReturnsFixedRefusal(t *testing.T) {
	g := NewGenerator(&scriptedLLM{}, discardLogger())

	reply := g.Generate(context.Background(), "q", nil)
	assert.Equal(t, constant.MentorNoContextAnswer, reply)
}

func TestGenerator_ProviderErrorReturnsFixedApology(t *testing.T) {
	g := NewGenerator(&scriptedLLM{errs: []error{fmt.Errorf("down")}}, discardLogger())

	reply := g.Generate(context.Background(), "q", candidates(2))
	assert.Equal(t, constant.MentorErrorAnswer, reply)
}

func TestGenerator_CapsAnswerLength(t *testing.T) {
	long := strings.Repeat("y", constant.AnswerMaxChars+100)
	g := NewGenerator(&scriptedLLM{responses: []string{long}}, discardLogger())

	reply := g.Generate(context.Background(), "q", candidates(1))
	assert.Len(t, []rune(reply), constant.AnswerMaxChars)
}

func TestGenerator_LabelsContextChunksByPosition(t *testing.T) {
	fake := &scriptedLLM{responses: []string{"fine"}}
	g := NewGenerator(fake, discardLogger())

	g.Generate(context.Background(), "q", candidates(2))

	require.Len(t, fake.prompts, 1)
	assert.Contains(t, fake.prompts[0], "[Chunk 1]\nchunk 1")
	assert.Contains(t, fake.prompts[0], "[Chunk 2]\nchunk 2")
}

func TestGenerator_EmptyResponseReturnsApology(t *testing.T) {
	g := NewGenerator(&scriptedLLM{responses: []string{"   "}}, discardLogger())

	reply := g.Generate(context.Background(), "q", candidates(1))
	assert.Equal(t, constant.MentorErrorAnswer, reply)
}

func newPipeline(llmFake *scriptedLLM, embedder *fakeEmbedder) *Pipeline {
	return NewPipeline(llmFake, embedder, memory.NewScopeRepository(), constant.RetrieveTopK, discardLogger())
}

func TestPipeline_UnknownBlockReturnsFixedAnswer(t *testing.T) {
	p := newPipeline(&scriptedLLM{}, &fakeEmbedder{})

	answer, err := p.Execute(context.Background(), newFakeUnitOfWork(), uuid.New(), "q")
	require.NoError(t, err)
	assert.Equal(t, constant.MentorBlockNotFoundAnswer, answer.Reply)
	assert.Empty(t, answer.Sources)
}

func TestPipeline_RejectsDraftCourse(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     uuid.New(),
		CourseId:     uuid.New(),
		CourseStatus: entity.StatusDraft,
	}

	p := newPipeline(&scriptedLLM{}, &fakeEmbedder{})

	_, err := p.Execute(context.Background(), uow, blockId, "q")
	assert.True(t, apperr.IsPrecondition(err))
}

func TestPipeline_AnswersOnArchivedCourse(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     uuid.New(),
		CourseId:     uuid.New(),
		CourseStatus: entity.StatusArchived,
	}
	uow.embeddingRepo.results = candidates(2)

	p := newPipeline(&scriptedLLM{responses: []string{"grounded answer"}}, &fakeEmbedder{})

	answer, err := p.Execute(context.Background(), uow, blockId, "q")
	require.NoError(t, err)
	assert.Equal(t, "grounded answer", answer.Reply)
}

func TestPipeline_EndToEnd(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	moduleId := uuid.New()
	courseId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     moduleId,
		CourseId:     courseId,
		CourseStatus: entity.StatusApproved,
	}
	uow.embeddingRepo.results = candidates(5)

	// First call reranks, second generates.
	llmFake := &scriptedLLM{responses: []string{"2,1,3", "grounded answer"}}
	p := newPipeline(llmFake, &fakeEmbedder{})

	answer, err := p.Execute(context.Background(), uow, blockId, "what is a variable?")
	require.NoError(t, err)

	assert.Equal(t, "grounded answer", answer.Reply)
	require.Len(t, answer.Sources, 3)
	assert.Equal(t, 2, llmFake.calls)

	// The search was scoped to the block's course and module.
	assert.Equal(t, courseId, uow.embeddingRepo.lastScope.CourseID)
	require.NotNil(t, uow.embeddingRepo.lastScope.ModuleID)
	assert.Equal(t, moduleId, *uow.embeddingRepo.lastScope.ModuleID)
	assert.Equal(t, constant.RetrieveTopK, uow.embeddingRepo.lastLimit)
}

func TestPipeline_NoCandidatesReturnsFixedRefusal(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     uuid.New(),
		CourseId:     uuid.New(),
		CourseStatus: entity.StatusApproved,
	}

	p := newPipeline(&scriptedLLM{}, &fakeEmbedder{})

	answer, err := p.Execute(context.Background(), uow, blockId, "q")
	require.NoError(t, err)
	assert.Equal(t, constant.MentorNoContextAnswer, answer.Reply)
	assert.Empty(t, answer.Sources)
}

func TestPipeline_EmbeddingFailureReturnsFixedApology(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     uuid.New(),
		CourseId:     uuid.New(),
		CourseStatus: entity.StatusApproved,
	}

	p := newPipeline(&scriptedLLM{}, &fakeEmbedder{err: fmt.Errorf("down")})

	answer, err := p.Execute(context.Background(), uow, blockId, "q")
	require.NoError(t, err)
	assert.Equal(t, constant.MentorErrorAnswer, answer.Reply)
}

func TestPipeline_CachesScopeLookups(t *testing.T) {
	uow := newFakeUnitOfWork()
	blockId := uuid.New()
	uow.contentRepo.scopes[blockId] = &entity.LearnBlockScope{
		LearnBlockId: blockId,
		ModuleId:     uuid.New(),
		CourseId:     uuid.New(),
		CourseStatus: entity.StatusApproved,
	}
	uow.embeddingRepo.results = candidates(1)

	llmFake := &scriptedLLM{responses: []string{"a1", "a2"}}
	p := newPipeline(llmFake, &fakeEmbedder{})

	_, err := p.Execute(context.Background(), uow, blockId, "q1")
	require.NoError(t, err)
	_, err = p.Execute(context.Background(), uow, blockId, "q2")
	require.NoError(t, err)

	assert.Equal(t, 1, uow.contentRepo.scopeLookups)
}
