package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/Optum/guardduty-enabler/pkg/awsiface"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/caarlos0/env"
	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
)

// ConfigurationError is an error that is returned by configuration
// methods when keys cannot be found or when there is an error whilst
// building the configuration.
type ConfigurationError error

type configurationValues struct {
	services []interface{}
	types    []reflect.Type
	impls    []reflect.Value
	vals     map[string]interface{}
}

// ConfigurationBuilder is the default implementation of a configuration loader.
type ConfigurationBuilder struct {
	values  *configurationValues
	isBuilt bool
}

// Unmarshal loads configuration into the provided structure from environment variables.
// Use the "env" tag on cfgStruct fields to indicate the corresponding environment variable to load from.
func (config *ConfigurationBuilder) Unmarshal(cfgStruct interface{}) error {
	return env.ParseWithFuncs(cfgStruct, env.CustomParsers{})
}

// Dump dumps the current config into the provided structure. Config keys are matched to
// cfgStruct fields using the "env" tag.
func (config *ConfigurationBuilder) Dump(cfgStruct interface{}) error {
	config.initialize()
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			TagName:          "env",
			Result:           cfgStruct,
			WeaklyTypedInput: true,
		})
	if err != nil {
		return ConfigurationError(err)
	}
	return decoder.Decode(config.values.vals)
}

// WithService is a Builder Pattern method that allows you to specify services
// for the given type.
func (config *ConfigurationBuilder) WithService(svc interface{}) *ConfigurationBuilder {
	config.initialize()
	config.values.services = append(config.values.services, svc)
	config.values.types = append(config.values.types, reflect.TypeOf(svc))
	config.values.impls = append(config.values.impls, reflect.ValueOf(svc))
	return config
}

// WithEnv allows you to point to an environment variable for the value and
// also specify a default using defaultValue
func (config *ConfigurationBuilder) WithEnv(key string, envVar string, defaultValue interface{}) *ConfigurationBuilder {
	config.initialize()

	envVal, ok := os.LookupEnv(envVar)
	if !ok {
		config.values.vals[key] = defaultValue
	} else {
		config.values.vals[key] = envVal
	}
	return config
}

// ParameterStoreVal is a config value waiting to be read from SSM Parameter Store
type ParameterStoreVal struct {
	Key           string
	ParameterName string
	DefaultValue  string
}

// WithParameterStoreEnv sets a config value from SSM Parameter store. The Parameter name is taken
// from the provided environment variable. If the environment variable or SSM parameter can't be retrieved,
// then the default value is used.
// Requires that an SSM service of type awsiface.SSMAPI is contained within config
func (config *ConfigurationBuilder) WithParameterStoreEnv(key string, envVar string, defaultValue string) *ConfigurationBuilder {
	config.initialize()

	envVal, ok := os.LookupEnv(envVar)
	if !ok {
		config.values.vals[key] = defaultValue
	} else {
		config.values.vals[key] = ParameterStoreVal{
			Key:           key,
			ParameterName: envVal,
			DefaultValue:  defaultValue,
		}
	}
	return config
}

// WithVal allows you to hardcode values into the configuration.
// This is good for testing, injecting known values or values derived by means
// outside the configuration.
func (config *ConfigurationBuilder) WithVal(key string, val interface{}) *ConfigurationBuilder {
	config.initialize()
	config.values.vals[key] = val
	return config
}

// GetService retreives the service with the given type. An error is thrown if
// the service is not found.
func (config *ConfigurationBuilder) GetService(svcFor interface{}) error {
	config.initialize()
	k := reflect.TypeOf(svcFor).Elem()
	kind := k.Kind()
	if kind == reflect.Ptr {
		k = k.Elem()
		kind = k.Kind()
	}
	for i, t := range config.values.types {
		if kind == reflect.Interface && t.Implements(k) {
			reflect.Indirect(
				reflect.ValueOf(svcFor),
			).Set(config.values.impls[i])
			return nil
		} else if kind == reflect.Struct && t.Kind() == reflect.Ptr && k.AssignableTo(t.Elem()) {
			reflect.ValueOf(svcFor).Elem().Set(config.values.impls[i])
			return nil
		}
	}
	return ConfigurationError(fmt.Errorf("no service found in configuration for key type: %s", k))
}

// GetStringVal returns the value of the key as a string.
func (config *ConfigurationBuilder) GetStringVal(key string) (string, error) {
	val, err := config.GetVal(key)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", ConfigurationError(fmt.Errorf("value for key %s is not a string", key))
	}
	return s, nil
}

// GetVal returns the raw value
func (config *ConfigurationBuilder) GetVal(key string) (interface{}, error) {
	if !config.isBuilt {
		return nil, ConfigurationError(errors.New("call Build() before attempting to get values"))
	}

	val, ok := config.values.vals[key]
	if !ok {
		return nil, ConfigurationError(fmt.Errorf("no value found in configuration for key: %s", key))
	}
	return val, nil
}

// Build builds the configuration.
func (config *ConfigurationBuilder) Build() error {
	config.initialize()
	config.isBuilt = true
	return nil
}

func (config *ConfigurationBuilder) initialize() {
	if config.values == nil {
		config.values = &configurationValues{}
	}
	if config.values.vals == nil {
		config.values.vals = make(map[string]interface{})
	}
}

// RetrieveParameterStoreVals replaces every parameter store value with
// the parameter read from SSM, or with its default when SSM does not
// know the parameter
func (config *ConfigurationBuilder) RetrieveParameterStoreVals() error {
	config.initialize()

	valsToRetrieve := map[string]ParameterStoreVal{}
	for _, val := range config.values.vals {
		if psVal, ok := val.(ParameterStoreVal); ok {
			valsToRetrieve[psVal.ParameterName] = psVal
		}
	}
	if len(valsToRetrieve) == 0 {
		return nil
	}

	var ssmClient awsiface.SSMAPI
	if err := config.GetService(&ssmClient); err != nil {
		return err
	}

	// Using bulk api to reduce number of SSM requests
	out, err := ssmClient.GetParameters(&ssm.GetParametersInput{
		Names:          getKeyPtrs(valsToRetrieve),
		WithDecryption: aws.Bool(false),
	})
	if err != nil {
		return err
	}

	for _, param := range out.Parameters {
		log.Debugf("Retrieved SSM Parameter: %s", aws.StringValue(param.Name))
		key := valsToRetrieve[aws.StringValue(param.Name)].Key
		config.WithVal(key, aws.StringValue(param.Value))
	}

	for _, invalidParam := range out.InvalidParameters {
		log.Warnf("Invalid SSM Parameter: %s", aws.StringValue(invalidParam))
		psVal := valsToRetrieve[aws.StringValue(invalidParam)]
		config.WithVal(psVal.Key, psVal.DefaultValue)
	}
	return nil
}

func getKeyPtrs(aMap map[string]ParameterStoreVal) []*string {
	keys := []*string{}
	for k := range aMap {
		keys = append(keys, aws.String(k))
	}
	return keys
}
