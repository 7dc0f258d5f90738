package usecase

import "time"

// BasePrompt is the persona sent as system instruction on every call.
const BasePrompt = `Ти си "Коди" - експертен бот-асистент по програмиране за начинаещи.
Целта ти е да помагаш с HTML, CSS, JavaScript и Python.
Винаги отговаряй на български език.
Бъди кратък, ясен и давай примери.
Ако те попитат кой те е създал, кажи че си проект на Камелия.

ВАЖНО: Ти имаш способността да учиш и помниш всичко от предишни разговори.
Използвай информацията от минали взаимодействия, за да даваш по-персонализирани и контекстуални отговори.`

const (
	ContextLabel     = "Контекст от предишни разговори: "
	PreferencesLabel = "Предпочитания: "
)

const (
	DefaultMaxMessageLength = 5000
	DefaultMaxHistory       = 20
	DefaultUserID           = "anonymous"
	DefaultModelTimeout     = 30 * time.Second
	DefaultContextTopics    = 5

	// persistTimeout bounds each background write.
	persistTimeout = 30 * time.Second

	sessionIDPrefix = "session_"
)

// Outcome labels of kodi_chat_requests_total and kodi_chat_model_duration_seconds.
const (
	outcomeSuccess      = "success"
	outcomeInvalidInput = "invalid_input"
	outcomeModelError   = "model_error"
	outcomeModelTimeout = "model_timeout"
)
