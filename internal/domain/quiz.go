package domain

import (
	"mime"
	"strings"
)

// MediaTypePDF is the only document format accepted for generation.
const MediaTypePDF = "application/pdf"

// Source is a citation backing a question's explanation.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Question is one multiple-choice item as produced by the generator.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Sources       []Source `json:"sources"`
}

// IsCorrect reports whether answer exactly matches the correct option.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.CorrectAnswer
}

// Quiz is an ordered, non-empty list of questions.
type Quiz []Question

// SourceKind tells a topic apart from an uploaded document.
type SourceKind int

const (
	SourceTopic SourceKind = iota
	SourceDocument
)

// QuizSource is the input a quiz is generated from: a topic or a document.
type QuizSource struct {
	Kind      SourceKind
	Topic     string
	Name      string
	MediaType string
	Data      []byte
}

// TopicSource builds a topic-driven source.
func TopicSource(topic string) QuizSource {
	return QuizSource{Kind: SourceTopic, Topic: topic}
}

// DocumentSource builds a document-driven source.
func DocumentSource(name, mediaType string, data []byte) QuizSource {
	return QuizSource{Kind: SourceDocument, Name: name, MediaType: mediaType, Data: data}
}

// IsDocument reports whether the source carries a document.
func (s QuizSource) IsDocument() bool {
	return s.Kind == SourceDocument
}

// Title is the name shown for the quiz: the trimmed topic or the file name.
func (s QuizSource) Title() string {
	if s.IsDocument() {
		return s.Name
	}
	return strings.TrimSpace(s.Topic)
}

// BaseMediaType returns the lower-cased media type without parameters.
func (s QuizSource) BaseMediaType() string {
	mt, _, err := mime.ParseMediaType(s.MediaType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s.MediaType))
	}
	return mt
}
