package parser

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"shulelink/internal/domain"

	"go.uber.org/zap"
)

// rawQuestion is the element shape providers are asked to return.
type rawQuestion struct {
	Question         string `json:"question"`
	OptionA          string `json:"optionA"`
	OptionB          string `json:"optionB"`
	OptionC          string `json:"optionC"`
	OptionD          string `json:"optionD"`
	CorrectAnswer    string `json:"correctAnswer"`
	Explanation      string `json:"explanation"`
	CalculationSteps string `json:"calculationSteps"`
	Formula          string `json:"formula"`
	Units            string `json:"units"`
	BlankAnswer      string `json:"blankAnswer"`
	QuestionType     string `json:"questionType"`
	ShowWorkRequired bool   `json:"showWorkRequired"`
}

// ParseQuizBatch extracts every valid question from raw. The structured JSON
// array form is tried first, then the line-oriented "Q:/A)/Correct:" form.
// Malformed elements are skipped; an error is returned only when no valid
// question remains.
func (p *Parser) ParseQuizBatch(raw string, expectedKind domain.QuestionKind) ([]domain.QuizQuestion, error) {
	s := cleanResponse(raw)
	if s == "" {
		return nil, domain.NewParseError("quiz response is empty", nil)
	}

	var questions []domain.QuizQuestion
	if arr, ok := extractJSONArray(s); ok {
		questions = p.parseJSONItems(arr, expectedKind)
	}
	if len(questions) == 0 {
		questions = p.parseLineItems(s, expectedKind)
	}
	if len(questions) == 0 {
		return nil, domain.NewParseError("no valid questions in response", nil)
	}
	return questions, nil
}

func (p *Parser) parseJSONItems(arr string, expectedKind domain.QuestionKind) []domain.QuizQuestion {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(arr), &items); err != nil {
		p.logger.Debug("Quiz response is not a JSON array", zap.Error(err))
		return nil
	}

	questions := make([]domain.QuizQuestion, 0, len(items))
	for i, item := range items {
		if err := validateItem(item); err != nil {
			p.skip(i, err)
			continue
		}
		var rq rawQuestion
		if err := json.Unmarshal(item, &rq); err != nil {
			p.skip(i, err)
			continue
		}
		q, err := toQuestion(rq, expectedKind)
		if err != nil {
			p.skip(i, err)
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func (p *Parser) parseLineItems(s string, expectedKind domain.QuestionKind) []domain.QuizQuestion {
	var (
		questions []domain.QuizQuestion
		current   *rawQuestion
		index     int
	)

	flush := func() {
		if current == nil {
			return
		}
		q, err := toQuestion(*current, expectedKind)
		if err != nil {
			p.skip(index, err)
		} else {
			questions = append(questions, q)
		}
		index++
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if value, ok := cutLabel(line, "Q:", "Question:"); ok {
			flush()
			current = &rawQuestion{Question: value}
			continue
		}
		if current == nil {
			continue
		}
		if idx, value, ok := cutOption(line); ok {
			switch idx {
			case 0:
				current.OptionA = value
			case 1:
				current.OptionB = value
			case 2:
				current.OptionC = value
			case 3:
				current.OptionD = value
			}
			continue
		}
		if value, ok := cutLabel(line, "Correct:", "Correct Answer:", "Answer:"); ok {
			current.CorrectAnswer = value
			continue
		}
		if value, ok := cutLabel(line, "Explanation:"); ok {
			current.Explanation = value
			continue
		}
	}
	flush()
	return questions
}

func (p *Parser) skip(index int, err error) {
	p.logger.Warn("Skipping malformed quiz item",
		zap.String("failure", string(domain.FailureParseSkip)),
		zap.Int("item", index),
		zap.Error(err),
	)
}

// cutLabel matches a case-insensitive "Label:" prefix.
func cutLabel(line string, labels ...string) (string, bool) {
	for _, label := range labels {
		if len(line) >= len(label) && strings.EqualFold(line[:len(label)], label) {
			return strings.TrimSpace(line[len(label):]), true
		}
	}
	return "", false
}

// cutOption matches "A)", "A." or "A:" option prefixes.
func cutOption(line string) (int, string, bool) {
	if len(line) < 2 {
		return 0, "", false
	}
	switch line[1] {
	case ')', '.', ':':
	default:
		return 0, "", false
	}
	idx, ok := domain.OptionIndex(line[:1])
	if !ok {
		return 0, "", false
	}
	return idx, strings.TrimSpace(line[2:]), true
}

func toQuestion(rq rawQuestion, expectedKind domain.QuestionKind) (domain.QuizQuestion, error) {
	kind := expectedKind
	if k, ok := domain.ParseQuestionKind(rq.QuestionType); ok {
		kind = k
	}

	options := []string{
		strings.TrimSpace(rq.OptionA),
		strings.TrimSpace(rq.OptionB),
		strings.TrimSpace(rq.OptionC),
		strings.TrimSpace(rq.OptionD),
	}
	for len(options) > 0 && options[len(options)-1] == "" {
		options = options[:len(options)-1]
	}
	if kind == domain.QuestionTrueFalse && len(options) == 0 {
		options = []string{"True", "False"}
	}

	q := domain.QuizQuestion{
		Text:             strings.TrimSpace(rq.Question),
		Kind:             kind,
		Explanation:      strings.TrimSpace(rq.Explanation),
		WorkedSteps:      strings.TrimSpace(rq.CalculationSteps),
		Formula:          strings.TrimSpace(rq.Formula),
		Units:            strings.TrimSpace(rq.Units),
		BlankAnswer:      strings.TrimSpace(rq.BlankAnswer),
		ShowWorkRequired: rq.ShowWorkRequired || kind == domain.QuestionCalculation,
	}

	answer := strings.TrimSpace(rq.CorrectAnswer)
	if len(options) == 0 && kind.RequiresOptions() {
		return domain.QuizQuestion{}, domain.NewParseError(fmt.Sprintf("%s question has no options", kind), nil)
	}
	if len(options) > 0 {
		idx, err := correctIndex(answer, options)
		if err != nil {
			return domain.QuizQuestion{}, err
		}
		q.Options = options
		q.CorrectOptionIndex = idx
	} else if q.BlankAnswer == "" {
		q.BlankAnswer = answer
	}
	if q.Kind == domain.QuestionFillBlank && q.BlankAnswer == "" && len(q.Options) > 0 {
		q.BlankAnswer = q.Options[q.CorrectOptionIndex]
	}

	if q.Explanation == "" {
		q.Explanation = domain.FallbackExplanation
	}
	if err := q.Validate(); err != nil {
		return domain.QuizQuestion{}, err
	}
	return q, nil
}

// correctIndex resolves the answer letter against the populated options. A
// true/false answer may also be given as the option text.
func correctIndex(answer string, options []string) (int, error) {
	if idx, ok := domain.OptionIndex(answer); ok {
		if idx >= len(options) || options[idx] == "" {
			return 0, domain.NewParseError(fmt.Sprintf("correct answer %q does not address a populated option", answer), nil)
		}
		return idx, nil
	}
	if len(options) == 2 {
		for i, opt := range options {
			if strings.EqualFold(opt, answer) {
				return i, nil
			}
		}
	}
	return 0, domain.NewParseError(fmt.Sprintf("invalid correct answer %q", answer), nil)
}
