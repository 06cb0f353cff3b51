package cli

import (
	"fmt"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	configurationCommandUseConstant              = "config"
	configurationCommandShortDescriptionConstant = "Print the effective configuration"
	configurationCommandLongDescriptionConstant  = "config prints the configuration after merging embedded defaults, the configuration file, .env files, and LOGICOST_ environment variables."
	configurationFlattenErrorTemplateConstant    = "unable to flatten configuration: %w"
	configurationEncodeErrorTemplateConstant     = "unable to encode configuration: %w"
	configurationTagNameConstant                 = "mapstructure"
)

func (application *Application) buildConfigurationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   configurationCommandUseConstant,
		Short: configurationCommandShortDescriptionConstant,
		Long:  configurationCommandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			encoded, encodeError := application.encodeConfiguration()
			if encodeError != nil {
				return encodeError
			}
			_, writeError := command.OutOrStdout().Write(encoded)
			return writeError
		},
	}
}

func (application *Application) encodeConfiguration() ([]byte, error) {
	flattened := map[string]any{}
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: configurationTagNameConstant,
		Result:  &flattened,
	})
	if decoderError != nil {
		return nil, fmt.Errorf(configurationFlattenErrorTemplateConstant, decoderError)
	}
	if decodeError := decoder.Decode(application.configuration); decodeError != nil {
		return nil, fmt.Errorf(configurationFlattenErrorTemplateConstant, decodeError)
	}
	encoded, marshalError := yaml.Marshal(flattened)
	if marshalError != nil {
		return nil, fmt.Errorf(configurationEncodeErrorTemplateConstant, marshalError)
	}
	return encoded, nil
}
