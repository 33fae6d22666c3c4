package generation

import (
	"context"
	"fmt"

	"ai-course-be/internal/entity"
	"ai-course-be/internal/repository/contract"
	"ai-course-be/internal/repository/specification"
	"ai-course-be/pkg/llm"

	"github.com/google/uuid"
)

// scriptedLLM replays canned responses in call order.
type scriptedLLM struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	s.prompts = append(s.prompts, prompt)
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", fmt.Errorf("scriptedLLM: unexpected call %d", i)
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("scriptedLLM: empty history")
	}
	return s.Generate(ctx, history[len(history)-1].Content, opts...)
}

type fakeCourseRepo struct {
	statusUpdates  map[uuid.UUID]entity.CourseStatus
	summaryUpdates map[uuid.UUID]string
	failSummary    bool
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		statusUpdates:  map[uuid.UUID]entity.CourseStatus{},
		summaryUpdates: map[uuid.UUID]string{},
	}
}

func (r *fakeCourseRepo) Create(ctx context.Context, course *entity.Course) error { return nil }
func (r *fakeCourseRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Course, error) {
	return nil, nil
}
func (r *fakeCourseRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Course, error) {
	return nil, nil
}
func (r *fakeCourseRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (r *fakeCourseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CourseStatus) error {
	r.statusUpdates[id] = status
	return nil
}
func (r *fakeCourseRepo) UpdateSummary(ctx context.Context, id uuid.UUID, summary string) error {
	if r.failSummary {
		return fmt.Errorf("summary write failed")
	}
	r.summaryUpdates[id] = summary
	return nil
}

type fakeCourseFileRepo struct {
	files []*entity.CourseFile
}

func (r *fakeCourseFileRepo) Create(ctx context.Context, file *entity.CourseFile) error { return nil }
func (r *fakeCourseFileRepo) FindAllByCourseId(ctx context.Context, courseId uuid.UUID) ([]*entity.CourseFile, error) {
	return r.files, nil
}

type fakeContentRepo struct {
	persisted map[uuid.UUID][]*entity.Module
	failGraph bool
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{persisted: map[uuid.UUID][]*entity.Module{}}
}

func (r *fakeContentRepo) CreateModuleGraph(ctx context.Context, courseId uuid.UUID, modules []*entity.Module) error {
	if r.failGraph {
		return fmt.Errorf("graph write failed")
	}
	r.persisted[courseId] = modules
	return nil
}
func (r *fakeContentRepo) FindActiveLearnBlocks(ctx context.Context, courseId uuid.UUID) ([]*entity.LearnBlock, error) {
	return nil, nil
}
func (r *fakeContentRepo) FindLearnBlockScope(ctx context.Context, learnBlockId uuid.UUID) (*entity.LearnBlockScope, error) {
	return nil, nil
}
func (r *fakeContentRepo) CountModules(ctx context.Context, courseId uuid.UUID) (int64, error) {
	return int64(len(r.persisted)), nil
}

type fakeUnitOfWork struct {
	courseRepo  *fakeCourseRepo
	fileRepo    *fakeCourseFileRepo
	contentRepo *fakeContentRepo

	began      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		courseRepo:  newFakeCourseRepo(),
		fileRepo:    &fakeCourseFileRepo{},
		contentRepo: newFakeContentRepo(),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.began++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) CourseRepository() contract.CourseRepository         { return u.courseRepo }
func (u *fakeUnitOfWork) CourseFileRepository() contract.CourseFileRepository { return u.fileRepo }
func (u *fakeUnitOfWork) CourseContentRepository() contract.CourseContentRepository {
	return u.contentRepo
}
func (u *fakeUnitOfWork) CourseEmbeddingRepository() contract.CourseEmbeddingRepository {
	return nil
}
