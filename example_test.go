package hjarta_test

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// ServerService is a service that reads its address from the configuration Document.
type ServerService struct {
	doc *config.Document
}

// Address returns "host:port" from the server section.
func (s *ServerService) Address() (string, error) {
	return s.doc.Fmt("{}:{}", "server/host+port")
}

// Example_appWithConfig demonstrates loading a YAML file into an App and
// injecting the resulting Document into a service.
func Example_appWithConfig() {
	serviceModule := fx.Module("service",
		fx.Provide(func(doc *config.Document) *ServerService {
			return &ServerService{doc: doc}
		}),
	)

	var service *ServerService

	invokeModule := fx.Module("invoke",
		fx.Invoke(func(s *ServerService) {
			service = s
		}),
	)

	app := hjarta.NewApp(
		hjarta.WithLogLevel("error"),
		hjarta.WithConfig("testdata/config.yaml"),
		hjarta.WithModules(serviceModule, invokeModule),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	address, err := service.Address()
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Server address: %s\n", address)
	// Output:
	// Server address: api.example.com:9000
}
