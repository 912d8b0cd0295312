package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/cowsay/internal/cow"
	"github.com/gorewood/cowsay/internal/cowfile"
)

// --- Say tool ---

// SayInput is the input for the say tool.
type SayInput struct {
	Message string `json:"message"          jsonschema:"text to put in the balloon"`
	Cow     string `json:"cow,omitempty"    jsonschema:"cow name from list_cows (default: default)"`
	Think   *bool  `json:"think,omitempty"  jsonschema:"draw a thought balloon instead of a speech balloon"`
	Width   int    `json:"width,omitempty"  jsonschema:"balloon width before wrapping (default 40)"`
	NoWrap  *bool  `json:"nowrap,omitempty" jsonschema:"keep the whole message on one line"`
	Eyes    string `json:"eyes,omitempty"   jsonschema:"eye style name from list_cows, or two literal characters"`
	Tongue  string `json:"tongue,omitempty" jsonschema:"tongue characters (default a single space)"`
}

// SayOutput is the output for the say tool.
type SayOutput struct {
	Cow    string `json:"cow"    jsonschema:"name of the cow that was drawn"`
	Output string `json:"output" jsonschema:"rendered balloon and cow"`
}

func handleSay(renderer *cow.Renderer, base cow.Request) mcp.ToolHandlerFor[SayInput, SayOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SayInput) (*mcp.CallToolResult, SayOutput, error) {
		req, err := buildSayRequest(base, input)
		if err != nil {
			return nil, SayOutput{}, err
		}

		rendered, err := renderer.Format(req)
		if err != nil {
			return nil, SayOutput{}, fmt.Errorf("rendering %s: %w", req.Cow, err)
		}
		return nil, SayOutput{Cow: req.Cow, Output: rendered}, nil
	}
}

// buildSayRequest applies the tool input on top of base; omitted fields keep
// the base value. Only catalog names are accepted for the cow; paths on the
// server's filesystem are not.
func buildSayRequest(base cow.Request, input SayInput) (cow.Request, error) {
	req := base
	req.Message = input.Message
	if req.Message == "" {
		req.Message = cow.DefaultMessage
	}
	if input.Think != nil {
		req.Think = *input.Think
	}
	if input.NoWrap != nil {
		req.Wrap = !*input.NoWrap
	}

	if input.Cow != "" {
		if cowfile.IsPath(input.Cow) || strings.ContainsAny(input.Cow, `/\`) {
			return cow.Request{}, fmt.Errorf("cow must be a name from list_cows, got %q", input.Cow)
		}
		req.Cow = input.Cow
	}
	if input.Width < 0 {
		return cow.Request{}, errors.New("width must not be negative")
	}
	if input.Width > 0 {
		req.Width = input.Width
	}
	if input.Eyes != "" {
		req.Eyes = input.Eyes
	}
	if input.Tongue != "" {
		req.Tongue = input.Tongue
	}
	return req, nil
}

// --- List cows tool ---

// ListCowsInput is the input for the list_cows tool (no parameters needed).
type ListCowsInput struct{}

// CowInfo describes one cow.
type CowInfo struct {
	Name        string `json:"name"                  jsonschema:"cow name to pass to say"`
	Description string `json:"description,omitempty" jsonschema:"description from the cowfile"`
	Source      string `json:"source"                jsonschema:"built-in or the directory the cow was found in"`
}

// ListCowsOutput is the output for the list_cows tool.
type ListCowsOutput struct {
	Count     int       `json:"count"             jsonschema:"number of cows"`
	Cows      []CowInfo `json:"cows"              jsonschema:"available cows"`
	EyeStyles []string  `json:"eye_styles"        jsonschema:"named eye styles accepted by say"`
	Warning   string    `json:"warning,omitempty" jsonschema:"non-fatal warning message"`
}

func handleListCows(renderer *cow.Renderer) mcp.ToolHandlerFor[ListCowsInput, ListCowsOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListCowsInput) (*mcp.CallToolResult, ListCowsOutput, error) {
		infos, err := renderer.List()
		warning := ""
		if err != nil {
			if len(infos) == 0 {
				return nil, ListCowsOutput{}, fmt.Errorf("listing cows: %w", err)
			}
			warning = err.Error()
		}

		cows := make([]CowInfo, 0, len(infos))
		for _, info := range infos {
			cows = append(cows, CowInfo{
				Name:        info.Name,
				Description: info.Description,
				Source:      info.Source,
			})
		}

		return nil, ListCowsOutput{
			Count:     len(cows),
			Cows:      cows,
			EyeStyles: cow.EyeStyles(),
			Warning:   warning,
		}, nil
	}
}
