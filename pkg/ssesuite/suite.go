// Package ssesuite is the built-in suite gating server-sent-events image
// generation for the image_api provider type.
package ssesuite

import (
	"github.com/vertti/featurecheck/pkg/featurecase"
	"github.com/vertti/featurecheck/pkg/marker"
)

// Case names, in execution order.
const (
	BackendGenerator = "Backend generator capability"
	ServiceLayer     = "Service-layer integration"
	ConfigValidation = "Configuration validation"
	ClientFacing     = "Client-facing presentation"
	Deployment       = "Deployment configuration"
)

// Artifact paths, relative to the application root.
const (
	GeneratorPath    = "backend/generators/image_api.py"
	ServicePath      = "backend/services/image.py"
	ConfigPath       = "backend/config.py"
	ProviderModal    = "frontend/src/components/settings/ProviderModal.vue"
	ProviderFormPath = "frontend/src/composables/useProviderForm.ts"
	DockerConfigPath = "docker/image_providers.yaml"
)

// Cases returns the five reference cases. Each call returns fresh slices.
func Cases() []featurecase.Case {
	return []featurecase.Case{
		{
			Name: BackendGenerator,
			Files: []featurecase.File{{Path: GeneratorPath, Passes: []featurecase.Pass{{Markers: []marker.Spec{
				{Text: "self.use_sse = config.get('use_sse', False)", Label: "reads use_sse configuration flag"},
				{Text: "def generate_image_stream(", Label: "streaming generation entry point"},
				{Text: "def _generate_via_images_api_stream(", Label: "streaming via images API"},
				{Text: "def _generate_via_chat_api_stream(", Label: "streaming via chat API"},
				{Text: `"stream": True`, Label: "request sets stream=True"},
				{Text: `"Accept": "text/event-stream"`, Label: "SSE Accept header"},
			}}}}},
		},
		{
			Name: ServiceLayer,
			Files: []featurecase.File{{Path: ServicePath, Passes: []featurecase.Pass{{Markers: []marker.Spec{
				{Text: "elif self.provider_config.get('type') == 'image_api':", Label: "dispatches on image_api provider type"},
				{Text: "if self.provider_config.get('use_sse', False):", Label: "selects SSE call from use_sse"},
				{Text: "for event in self.generator.generate_image_stream(", Label: "calls generate_image_stream"},
				{Text: "if event['event'] == 'complete' and 'image_data' in event['data']:", Label: "handles complete event"},
			}}}}},
		},
		{
			Name: ConfigValidation,
			Files: []featurecase.File{{Path: ConfigPath, Passes: []featurecase.Pass{{Markers: []marker.Spec{
				{Text: "if provider_type in ['openai', 'openai_compatible', 'image_api']:", Label: "image_api in provider type validation"},
				{Text: "use_sse = provider_config.get('use_sse', False)", Label: "reads use_sse with default False"},
				{Text: `logger.info(f"服务商 [{provider_name}] 启用 SSE 流式调用 (type={provider_type})")`, Label: "logs SSE enablement"},
			}}}}},
		},
		{
			Name: ClientFacing,
			Files: []featurecase.File{
				{Path: ProviderModal, Passes: []featurecase.Pass{{Markers: []marker.Spec{
					{Text: "props.formData.type === 'image_api'", Label: "SSE option shown for image_api"},
					{Text: "启用后将以 Server-Sent Events 方式调用图片生成 API", Label: "SSE option description"},
				}}}},
				{Path: ProviderFormPath, Passes: []featurecase.Pass{
					{Name: "typed field", Markers: []marker.Spec{
						{Text: "ImageProviderForm", Label: "ImageProviderForm type"},
						{Text: "use_sse?: boolean", Label: "use_sse field"},
					}},
					{Name: "save assignment", Markers: []marker.Spec{
						{Text: "providerData.use_sse = imageForm.value.use_sse", Label: "use_sse saved to provider data"},
					}},
				}},
			},
		},
		{
			Name: Deployment,
			Files: []featurecase.File{{Path: DockerConfigPath, Passes: []featurecase.Pass{{Markers: []marker.Spec{
				{Text: "use_sse: false  # 是否使用SSE流式调用", Label: "documented use_sse default"},
			}}}}},
		},
	}
}
