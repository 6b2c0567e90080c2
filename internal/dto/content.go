package dto

// QuoteResponse represents the daily quote in the API response
// @Description Motivational quote of the day
type QuoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Source string `json:"source"`
}

// NotesResponse represents topic notes in the API response
// @Description Study notes for a topic
type NotesResponse struct {
	Subject       string `json:"subject"`
	Grade         string `json:"grade"`
	Topic         string `json:"topic"`
	Comprehensive bool   `json:"comprehensive"`
	Text          string `json:"text"`
}

// TopicResponse is one reading catalog lesson
// @Description Reading topic with its markdown lesson
type TopicResponse struct {
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	GradeBand   string `json:"grade_band"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// TopicListResponse lists the reading topics for a grade
type TopicListResponse struct {
	Grade  string          `json:"grade"`
	Topics []TopicResponse `json:"topics"`
}

// QuizQuestionResponse is one generated question
// @Description Quiz question
type QuizQuestionResponse struct {
	ID                 string   `json:"id"`
	Question           string   `json:"question"`
	Kind               string   `json:"kind"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
	CorrectAnswer      string   `json:"correct_answer"`
	Explanation        string   `json:"explanation"`
	WorkedSteps        string   `json:"worked_steps,omitempty"`
	Formula            string   `json:"formula,omitempty"`
	Units              string   `json:"units,omitempty"`
	ShowWorkRequired   bool     `json:"show_work_required,omitempty"`
	Source             string   `json:"source"`
}

// QuizBatchResponse represents a generated quiz batch
// @Description Batch of quiz questions
type QuizBatchResponse struct {
	Subject   string                 `json:"subject"`
	Grade     string                 `json:"grade"`
	Topic     string                 `json:"topic"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// ChatTurn is one prior message in the conversation
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChatRequest represents a study-buddy chat message
// @Description Request body for the study-buddy chat
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

// ChatResponse represents the study-buddy reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// CheckAnswerRequest represents a user's answer in the API request
// @Description Request body for checking an answer
type CheckAnswerRequest struct {
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// CheckAnswerResponse represents the answer check result
type CheckAnswerResponse struct {
	Correct bool `json:"correct"`
}

// HealthResponse reports service health
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
