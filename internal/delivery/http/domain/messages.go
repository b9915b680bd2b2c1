package domain

// Auth
var (
	AUTH_REGISTER_SUCCESS = "Account registered successfully"
	AUTH_REGISTER_FAILED  = "Failed to register account"
	AUTH_LOGIN_SUCCESS    = "Logged in successfully"
	AUTH_LOGIN_FAILED     = "Failed to log in"
	AUTH_PROFILE_SUCCESS  = "Profile retrieved successfully"
	AUTH_PROFILE_FAILED   = "Failed to retrieve profile"
)

// Content management
var (
	CONTENT_TOPIC_LIST_SUCCESS      = "Topics retrieved successfully"
	CONTENT_TOPIC_LIST_FAILED       = "Failed to retrieve topics"
	CONTENT_TOPIC_CREATE_SUCCESS    = "Topic created successfully"
	CONTENT_TOPIC_CREATE_FAILED     = "Failed to create topic"
	CONTENT_TOPIC_UPDATE_SUCCESS    = "Topic updated successfully"
	CONTENT_TOPIC_UPDATE_FAILED     = "Failed to update topic"
	CONTENT_TOPIC_DELETE_SUCCESS    = "Topic deleted successfully"
	CONTENT_TOPIC_DELETE_FAILED     = "Failed to delete topic"
	CONTENT_CHAPTER_LIST_SUCCESS    = "Chapters retrieved successfully"
	CONTENT_CHAPTER_LIST_FAILED     = "Failed to retrieve chapters"
	CONTENT_CHAPTER_CREATE_SUCCESS  = "Chapter created successfully"
	CONTENT_CHAPTER_CREATE_FAILED   = "Failed to create chapter"
	CONTENT_CHAPTER_UPDATE_SUCCESS  = "Chapter updated successfully"
	CONTENT_CHAPTER_UPDATE_FAILED   = "Failed to update chapter"
	CONTENT_CHAPTER_DELETE_SUCCESS  = "Chapter deleted successfully"
	CONTENT_CHAPTER_DELETE_FAILED   = "Failed to delete chapter"
	CONTENT_QUESTION_LIST_SUCCESS   = "Questions retrieved successfully"
	CONTENT_QUESTION_LIST_FAILED    = "Failed to retrieve questions"
	CONTENT_QUESTION_CREATE_SUCCESS = "Question created successfully"
	CONTENT_QUESTION_CREATE_FAILED  = "Failed to create question"
	CONTENT_QUESTION_UPDATE_SUCCESS = "Question updated successfully"
	CONTENT_QUESTION_UPDATE_FAILED  = "Failed to update question"
	CONTENT_QUESTION_DELETE_SUCCESS = "Question deleted successfully"
	CONTENT_QUESTION_DELETE_FAILED  = "Failed to delete question"
)

// Practice
var (
	PRACTICE_START_SUCCESS    = "Practice session started"
	PRACTICE_START_FAILED     = "Failed to start practice session"
	PRACTICE_ANSWER_SUCCESS   = "Answer submitted"
	PRACTICE_ANSWER_FAILED    = "Failed to submit answer"
	PRACTICE_COMPLETE_SUCCESS = "Practice session completed"
	PRACTICE_COMPLETE_FAILED  = "Failed to complete practice session"
	PRACTICE_REVIEW_SUCCESS   = "Session review retrieved successfully"
	PRACTICE_REVIEW_FAILED    = "Failed to retrieve session review"
)

// Progress analytics
var (
	PROGRESS_LIST_SUCCESS           = "Topic progress retrieved successfully"
	PROGRESS_LIST_FAILED            = "Failed to retrieve topic progress"
	PROGRESS_OVERVIEW_SUCCESS       = "Progress overview retrieved successfully"
	PROGRESS_OVERVIEW_FAILED        = "Failed to retrieve progress overview"
	PROGRESS_RECOMMENDATION_SUCCESS = "Study recommendations retrieved successfully"
	PROGRESS_RECOMMENDATION_FAILED  = "Failed to retrieve study recommendations"
)

// Study plans
var (
	STUDYPLAN_GENERATE_SUCCESS = "Study plan generated successfully"
	STUDYPLAN_GENERATE_FAILED  = "Failed to generate study plan"
	STUDYPLAN_LIST_SUCCESS     = "Study plans retrieved successfully"
	STUDYPLAN_LIST_FAILED      = "Failed to retrieve study plans"
	STUDYPLAN_GET_SUCCESS      = "Study plan retrieved successfully"
	STUDYPLAN_GET_FAILED       = "Failed to retrieve study plan"
	STUDYPLAN_DELETE_SUCCESS   = "Study plan deleted successfully"
	STUDYPLAN_DELETE_FAILED    = "Failed to delete study plan"
)

// Subscription
var (
	SUBSCRIPTION_STATUS_SUCCESS   = "Subscription status retrieved successfully"
	SUBSCRIPTION_STATUS_FAILED    = "Failed to retrieve subscription status"
	SUBSCRIPTION_ACTIVATE_SUCCESS = "Subscription activated successfully"
	SUBSCRIPTION_ACTIVATE_FAILED  = "Failed to activate subscription"
	SUBSCRIPTION_GRANT_SUCCESS    = "Subscription granted successfully"
	SUBSCRIPTION_GRANT_FAILED     = "Failed to grant subscription"
)
