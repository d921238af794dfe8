package dlai_test

import (
	"context"
	"fmt"
	"strings"

	dlai "github.com/OrtizR52/AgenticAI-DLAI"
)

func ExampleGetResponse() {
	upper := dlai.GeneratorFunc(func(_ context.Context, req *dlai.Request) (*dlai.Response, error) {
		return &dlai.Response{Text: strings.ToUpper(dlai.TextFromParts(req.Parts))}, nil
	})
	text, err := dlai.GetResponse(context.Background(), upper, "any-model", "hello")
	if err != nil {
		panic(err)
	}
	fmt.Println(text)
	// Output: HELLO
}

func ExampleImageRequest() {
	req := dlai.ImageRequest("gemini-2.5-flash", "Describe the chart", "image/png", "iVBORw0KGgo=")
	for _, p := range req.Parts {
		fmt.Printf("%T\n", p)
	}
	// Output:
	// dlai.MediaPart
	// dlai.TextPart
}
