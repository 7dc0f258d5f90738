package httpserver

import (
	"github.com/gin-gonic/gin"

	chatHTTP "kodi-assistant/internal/chat/delivery/http"
	conversationHTTP "kodi-assistant/internal/conversation/delivery/http"
	learningHTTP "kodi-assistant/internal/learning/delivery/http"
)

// Each domain is wired the same way:
//  1. The UseCase is built in main, where repositories are chosen by store driver.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, srv.mw)

// setupChatDomain registers POST /chat.
func (srv HTTPServer) setupChatDomain(rg *gin.RouterGroup) {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(rg, h, srv.mw)
}

// setupLearningDomain registers GET|POST /stats.
func (srv HTTPServer) setupLearningDomain(rg *gin.RouterGroup) {
	h := learningHTTP.New(srv.l, srv.learningUC)
	learningHTTP.RegisterRoutes(rg, h, srv.mw)
}

// setupConversationDomain registers GET|POST /history.
func (srv HTTPServer) setupConversationDomain(rg *gin.RouterGroup) {
	h := conversationHTTP.New(srv.l, srv.conversationUC)
	conversationHTTP.RegisterRoutes(rg, h, srv.mw)
}
