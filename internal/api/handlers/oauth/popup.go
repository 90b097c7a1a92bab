package oauth

import (
	"html/template"
	"log"
	"net/http"
)

// connectSuccessTemplate is rendered in the popup after a calendar connection
// completes. It notifies the opener window and then closes itself, so the
// dashboard can refresh its account list without a page reload.
var connectSuccessTemplate = template.Must(template.New("connect_success").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Calendar Connected - OneSlot</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
      color: #fff;
      min-height: 100vh;
      display: flex;
      justify-content: center;
      align-items: center;
      padding: 24px;
    }
    .card {
      text-align: center;
      max-width: 320px;
    }
    .checkmark {
      width: 64px;
      height: 64px;
      margin: 0 auto 24px;
      background: rgba(255, 255, 255, 0.2);
      border-radius: 50%;
      display: flex;
      align-items: center;
      justify-content: center;
      animation: scale-in 0.3s ease-out;
    }
    .checkmark svg {
      width: 32px;
      height: 32px;
      stroke: white;
      stroke-width: 3;
      fill: none;
    }
    @keyframes scale-in {
      0% { transform: scale(0); }
      50% { transform: scale(1.1); }
      100% { transform: scale(1); }
    }
    h1 {
      font-size: 24px;
      font-weight: 600;
      margin-bottom: 8px;
    }
    .email {
      font-size: 14px;
      background: rgba(255, 255, 255, 0.15);
      padding: 8px 16px;
      border-radius: 8px;
      margin-bottom: 24px;
      display: inline-block;
    }
    .hint {
      font-size: 13px;
      opacity: 0.8;
      line-height: 1.5;
    }
  </style>
</head>
<body>
  <div class="card">
    <div class="checkmark">
      <svg viewBox="0 0 24 24">
        <polyline points="20 6 9 17 4 12"></polyline>
      </svg>
    </div>
    <h1>Calendar Connected</h1>
    {{if .Email}}
    <div class="email">{{.Email}}</div>
    {{end}}
    <p class="hint">This window will close automatically.</p>
  </div>
  <script>
    if (window.opener) {
      window.opener.postMessage({ type: 'OAUTH_SUCCESS', provider: {{.Provider}} }, '*');
    }
    setTimeout(function() {
      window.close();
    }, 1000);
  </script>
</body>
</html>
`))

// connectErrorTemplate is rendered when the flow ends in anything other than
// success. The message is a fixed, user-safe phrase; provider error detail
// never reaches the browser. Rejected flows never notify the opener window:
// it observes the popup closing and shows its own generic failure. When there
// is no opener (a full-page sign-in that failed before its flow request was
// read), the page falls back to the login screen instead of stranding the
// user on a "close this window" message.
var connectErrorTemplate = template.Must(template.New("connect_error").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} - OneSlot</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      background: #f7f8fc;
      color: #2d3748;
      min-height: 100vh;
      display: flex;
      justify-content: center;
      align-items: center;
      padding: 24px;
    }
    .card {
      text-align: center;
      max-width: 360px;
      background: #fff;
      border-radius: 16px;
      padding: 40px 32px;
      box-shadow: 0 10px 40px rgba(102, 126, 234, 0.15);
    }
    h1 {
      font-size: 20px;
      font-weight: 600;
      margin-bottom: 12px;
    }
    .message {
      font-size: 15px;
      color: #718096;
      line-height: 1.6;
      margin-bottom: 24px;
    }
    .hint {
      font-size: 13px;
      color: #a0aec0;
    }
  </style>
</head>
<body>
  <div class="card">
    <h1>{{.Title}}</h1>
    <p class="message">{{.Message}}</p>
    <p class="hint">You can close this window and try again.</p>
  </div>
  <script>
    if (window.opener) {
      setTimeout(function() {
        window.close();
      }, 3000);
    } else {
      window.location.replace({{.FallbackURL}});
    }
  </script>
</body>
</html>
`))

type connectSuccessData struct {
	Provider string
	Email    string
}

type connectErrorData struct {
	Title       string
	Message     string
	FallbackURL string
}

func renderConnectSuccess(w http.ResponseWriter, data connectSuccessData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	if err := connectSuccessTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render connect success page: %v", err)
	}
}

// renderConnectError always responds 200. A rejected callback is a normal
// terminal state of the flow, not an HTTP failure; the pages differ from the
// success page only in their human-readable text.
func renderConnectError(w http.ResponseWriter, data connectErrorData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	if err := connectErrorTemplate.Execute(w, data); err != nil {
		log.Printf("Failed to render connect error page: %v", err)
	}
}
