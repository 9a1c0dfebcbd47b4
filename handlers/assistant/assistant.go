package assistant

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// baseURL is overridden in tests.
var baseURL = "https://generativelanguage.googleapis.com"

var client = resty.New()

const model = "gemini-1.5-flash-latest"

type chatInput struct {
	Prompt string `json:"prompt"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Chat forwards a prompt to the Gemini API and returns the generated reply.
// A missing API key degrades to a configuration warning rather than an error
// so the rest of the CRM keeps working without the integration.
func Chat(c *gin.Context) {
	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if strings.TrimSpace(input.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusOK, gin.H{
			"reply":   "",
			"warning": "Assistant is not configured. Set GEMINI_API_KEY to enable it.",
		})
		return
	}

	var result geminiResponse
	resp, err := client.R().
		SetQueryParam("key", apiKey).
		SetBody(geminiRequest{
			Contents: []geminiContent{{Parts: []geminiPart{{Text: input.Prompt}}}},
		}).
		SetResult(&result).
		Post(baseURL + "/v1beta/models/" + model + ":generateContent")
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant provider is unreachable"})
		return
	}
	if resp.IsError() {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Assistant provider returned an error"})
		return
	}

	var reply string
	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		reply = result.Candidates[0].Content.Parts[0].Text
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
