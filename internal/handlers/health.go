package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/merlinjoyv/GlowUpAI/internal/models"
)

const serviceName = "AI Fashion Specialist"

type HealthHandler struct {
	aiEnabled bool
	provider  string
	now       func() time.Time
}

func NewHealthHandler(aiEnabled bool, provider string) *HealthHandler {
	return &HealthHandler{
		aiEnabled: aiEnabled,
		provider:  provider,
		now:       time.Now,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
		Service:   serviceName,
		AIEnabled: h.aiEnabled,
		Provider:  h.provider,
	})
}

var statusPage = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>{{.Service}} Backend</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; background: #f5f5f5; }
        .container { background: white; padding: 30px; border-radius: 10px; max-width: 600px; }
        .status { padding: 10px; border-radius: 5px; margin: 10px 0; }
        .success { background: #d4edda; color: #155724; }
        .warning { background: #fff3cd; color: #856404; }
    </style>
</head>
<body>
    <div class="container">
        <h1>🚀 {{.Service}} Backend</h1>
        {{if .AIEnabled}}<div class="status success">Status: ✅ AI-Powered ({{.Provider}})</div>
        {{else}}<div class="status warning">Status: ⚠️ Fallback Mode</div>{{end}}
        <p>Backend is running successfully! Use your HTML frontend to interact with the fashion assistant.</p>
        <h3>📡 API Endpoints:</h3>
        <ul>
            <li><strong>GET /api/health</strong> - Health check</li>
            <li><strong>POST /api/fashion-chat</strong> - Fashion advice chat</li>
            <li><strong>GET /api/ws</strong> - Fashion advice chat over WebSocket</li>
            <li><strong>POST /submit-user</strong> - Contact form submission</li>
        </ul>
    </div>
</body>
</html>
`))

// StatusPage serves a small HTML page at the root path.
func (h *HealthHandler) StatusPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	statusPage.Execute(w, struct {
		Service   string
		AIEnabled bool
		Provider  string
	}{serviceName, h.aiEnabled, h.provider})
}
