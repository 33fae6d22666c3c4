package mapper

import (
	"ai-course-be/internal/entity"
	"ai-course-be/internal/model"
)

// CourseContentMapper converts between the module/learn-block/practice/
// question entity graph and its flat gorm models.
type CourseContentMapper struct{}

func NewCourseContentMapper() *CourseContentMapper {
	return &CourseContentMapper{}
}

func (m *CourseContentMapper) ModuleToModel(mod *entity.Module) *model.Module {
	if mod == nil {
		return nil
	}
	return &model.Module{
		Id:          mod.Id,
		CourseId:    mod.CourseId,
		Title:       mod.Title,
		Description: mod.Description,
		Position:    mod.Position,
		CreatedAt:   mod.CreatedAt,
	}
}

func (m *CourseContentMapper) ModuleToEntity(mod *model.Module) *entity.Module {
	if mod == nil {
		return nil
	}
	return &entity.Module{
		Id:          mod.Id,
		CourseId:    mod.CourseId,
		Title:       mod.Title,
		Description: mod.Description,
		Position:    mod.Position,
		CreatedAt:   mod.CreatedAt,
		IsDeleted:   mod.DeletedAt.Valid,
	}
}

func (m *CourseContentMapper) LearnBlockToModel(lb *entity.LearnBlock) *model.LearnBlock {
	if lb == nil {
		return nil
	}
	return &model.LearnBlock{
		Id:        lb.Id,
		ModuleId:  lb.ModuleId,
		Position:  lb.Position,
		Content:   lb.Content,
		CreatedAt: lb.CreatedAt,
	}
}

func (m *CourseContentMapper) LearnBlockToEntity(lb *model.LearnBlock) *entity.LearnBlock {
	if lb == nil {
		return nil
	}
	return &entity.LearnBlock{
		Id:        lb.Id,
		ModuleId:  lb.ModuleId,
		Position:  lb.Position,
		Content:   lb.Content,
		CreatedAt: lb.CreatedAt,
		IsDeleted: lb.DeletedAt.Valid,
	}
}

func (m *CourseContentMapper) PracticeToModel(p *entity.Practice) *model.Practice {
	if p == nil {
		return nil
	}
	return &model.Practice{
		Id:        p.Id,
		ModuleId:  p.ModuleId,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
	}
}

func (m *CourseContentMapper) QuestionToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:            q.Id,
		PracticeId:    q.PracticeId,
		Position:      q.Position,
		QuestionType:  string(q.Type),
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		ExampleAnswer: q.ExampleAnswer,
		CreatedAt:     q.CreatedAt,
	}
}

func (m *CourseContentMapper) OptionToModel(o *entity.QuestionOption) *model.QuestionOption {
	if o == nil {
		return nil
	}
	return &model.QuestionOption{
		Id:         o.Id,
		QuestionId: o.QuestionId,
		Position:   o.Position,
		Text:       o.Text,
	}
}
