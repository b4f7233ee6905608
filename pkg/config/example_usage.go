package config

// Example usage of the configuration system:
//
// 1. Load configuration with all sources:
//
//     config, err := config.Load("", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 2. Load with custom config file:
//
//     config, err := config.Load("/path/to/config.yaml", nil)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 3. Load with command line flags:
//
//     flags := map[string]interface{}{
//         "pages": []string{"PhuketTimeNews"},
//         "posts": 10,
//         "page-depth": 5,
//         "timeout": 60,
//         "log-level": "debug",
//     }
//     config, err := config.Load("", flags)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// 4. Programmatic configuration:
//
//     config := config.DefaultConfig()
//     config.Pages = []string{"SomePage", "OtherPage"}
//     config.Probe.PostCount = 10
//
//     if err := config.Validate(); err != nil {
//         log.Fatal(err)
//     }
//
// 5. Save configuration to file:
//
//     if err := config.Save(".fbprobe.yaml"); err != nil {
//         log.Fatal(err)
//     }
//
// 6. Environment variables:
//
//     export FBPROBE_PAGES="PhuketTimeNews,OtherPage"
//     export FBPROBE_POST_COUNT="5"
//     export FBPROBE_PAGE_DEPTH="3"
//     export FBPROBE_FETCH_TIMEOUT="30s"
//     export FBPROBE_REQUESTS_PER_MINUTE="30"
//     export FBPROBE_LOG_LEVEL="debug"
//
// 7. Using configuration in your application:
//
//     // Create Facebook client with config
//     client := facebook.NewClientWithConfig(config, log)
//
//     // Run the probe against the configured pages
//     prober := probe.New(config)
//     for _, page := range config.Pages {
//         result := prober.ProbePage(page)
//         // ...
//     }
