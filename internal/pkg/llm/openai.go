package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"

	"github.com/matisaar/T661-Checker/config"
)

// ChatModel wraps the Eino OpenAI ChatModel behind the Capability surface.
type ChatModel struct {
	chatModel model.ToolCallingChatModel
	modelName string
}

// NewChatModel creates the underlying OpenAI ChatModel from config.
func NewChatModel(cfg *config.Config) (*ChatModel, error) {
	klog.V(6).Infof("[ChatModel] creating OpenAI chat model: model=%s, baseURL=%s", cfg.LLM.Model, cfg.LLM.APIURL)

	conf := &openai.ChatModelConfig{
		APIKey: cfg.LLM.APIKey,
		Model:  cfg.LLM.Model,
	}

	if cfg.LLM.APIURL != "" {
		conf.BaseURL = cfg.LLM.APIURL
	}

	if cfg.LLM.MaxTokens > 0 {
		maxTokens := cfg.LLM.MaxTokens
		conf.MaxTokens = &maxTokens
	}

	chatModel, err := openai.NewChatModel(context.Background(), conf)
	if err != nil {
		klog.Errorf("[ChatModel] create failed: %v", err)
		return nil, err
	}

	return &ChatModel{chatModel: chatModel, modelName: cfg.LLM.Model}, nil
}

// Generate sends one system+user exchange and returns the reply text. The
// call blocks until the model answers or ctx is done; there are no partial
// results and no retries.
func (m *ChatModel) Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error) {
	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: userPrompt},
	}

	var callOpts []model.Option
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, model.WithMaxTokens(opts.MaxTokens))
	}
	if opts.Temperature > 0 {
		callOpts = append(callOpts, model.WithTemperature(opts.Temperature))
	}

	klog.V(6).Infof("[ChatModel] generate: model=%s, promptLength=%d", m.modelName, len(userPrompt))

	resp, err := m.chatModel.Generate(ctx, messages, callOpts...)
	if err != nil {
		klog.Errorf("[ChatModel] generate failed: %v", err)
		return "", err
	}

	klog.V(6).Infof("[ChatModel] generate done: responseLength=%d", len(resp.Content))
	return resp.Content, nil
}
