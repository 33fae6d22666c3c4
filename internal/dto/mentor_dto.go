package dto

import "github.com/google/uuid"

type AskMentorRequest struct {
	Question string `json:"question" validate:"required"`
}

type MentorSourceDTO struct {
	ChunkId      uuid.UUID `json:"chunk_id"`
	LearnBlockId uuid.UUID `json:"learn_block_id"`
	Similarity   float64   `json:"similarity"`
}

type AskMentorResponse struct {
	Answer  string            `json:"answer"`
	Sources []MentorSourceDTO `json:"sources"`
}
