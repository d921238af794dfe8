package dlai

import "context"

// GetResponse sends prompt to model as a single text part and returns the response text unmodified.
// There is no retry; any error from g is returned as is.
func GetResponse(ctx context.Context, g Generator, model, prompt string) (string, error) {
	return generateText(ctx, g, &Request{
		Model: model,
		Parts: []ContentPart{TextPart{Text: prompt}},
	})
}

// ImageCall sends an inline image followed by prompt and returns the textual response.
// The content order is [media, text]. mediaType and b64 are not validated locally.
func ImageCall(ctx context.Context, g Generator, model, prompt, mediaType, b64 string) (string, error) {
	return generateText(ctx, g, ImageRequest(model, prompt, mediaType, b64))
}

// ImageRequest builds the request used by ImageCall.
func ImageRequest(model, prompt, mediaType, b64 string) *Request {
	return &Request{
		Model: model,
		Parts: []ContentPart{
			MediaPart{MIMEType: mediaType, Data: b64},
			TextPart{Text: prompt},
		},
	}
}

func generateText(ctx context.Context, g Generator, req *Request) (string, error) {
	if g == nil {
		return "", ErrNilGenerator
	}
	resp, err := g.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", ErrInvalidResponse
	}
	return resp.Text, nil
}
