package constant

// Chunking parameters for the embedding indexer. A chunk identity is
// derived from its learn block and start offset, so these values are
// part of the stored data contract: changing them re-keys every chunk.
const (
	ChunkWindowSize = 500
	ChunkOverlap    = 50
)

// Generation limits.
const (
	SummaryMaxChars = 3000
	AnswerMaxChars  = 500
	MinModuleCount  = 1
)

// Mentor retrieval parameters.
const (
	RetrieveTopK  = 10
	RerankKeepTop = 3
)

// Fixed mentor answers. These are returned verbatim so the frontend can
// match on them.
const (
	MentorNoContextAnswer     = "I don't have enough course material to answer that question. Please ask about the content of this learn block."
	MentorErrorAnswer         = "Sorry, I ran into a problem answering that. Please try again in a moment."
	MentorBlockNotFoundAnswer = "I couldn't find the learn block you're asking about."
)

// SummarizePromptTemplate condenses raw source documents into a course
// summary. First %s is the course title, second the course description,
// third the concatenated source material.
const SummarizePromptTemplate = `You are an expert instructional designer. Summarize the following source material into a concise course summary of at most 3000 characters. Capture the main topics, their order, and the intended learning outcomes. Stay on the subject of the course named below. Respond with the summary text only.

Course title: %s
Course description: %s

Source material:
%s`

// SynthesizePromptTemplate turns a summary into a structured course.
// %d is the requested module count, %s is the course summary.
const SynthesizePromptTemplate = `You are an expert instructional designer. Based on the course summary below, design a complete course with exactly %d modules as JSON.

The JSON object must have this exact shape:
{
  "modules": [
    {
      "title": "...",
      "description": "...",
      "learn_blocks": [
        {"content": "..."}
      ],
      "practices": [
        {
          "questions": [
            {
              "type": "closed",
              "text": "...",
              "correct_answer": "...",
              "options": ["...", "...", "..."]
            },
            {
              "type": "open",
              "text": "...",
              "example_answer": "...",
              "keywords": ["...", "..."]
            }
          ]
        }
      ]
    }
  ]
}

Rules:
- Every module needs at least one learn block.
- "closed" questions must include correct_answer and at least two options, one of which equals correct_answer.
- "open" questions must include example_answer and at least one keyword.
- Respond with the JSON object only, no prose.

Course summary:
%s`

// RerankPromptTemplate asks the model to order retrieved chunks by
// relevance. First %s is the question, second %s is the numbered list
// of candidate chunks.
const RerankPromptTemplate = `You are ranking course material excerpts by how well they answer a learner's question.

Question: %s

Excerpts:
%s

Respond with the numbers of the three most relevant excerpts, most relevant first, as a comma-separated list (for example: 2,5,1). Respond with the numbers only.`

// MentorPromptTemplate generates the grounded answer. First %s is the
// context excerpts, second %s is the learner's question.
const MentorPromptTemplate = `You are a patient course mentor. Answer the learner's question using only the course material below. If the material does not contain the answer, say you don't know based on the course content. Keep the answer under 500 characters.

Course material:
%s

Question: %s`
