package weatherinfo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultURL is the wttr.in instance used when no weather.url is configured.
const DefaultURL = "https://wttr.in"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// GetWeather fetches a one-line weather report. location may be empty, in
// which case the service detects it from the request's origin. The m
// parameter forces metric units.
func GetWeather(baseURL, location string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	url := strings.TrimRight(baseURL, "/") + "/"
	if location != "" {
		url += strings.ReplaceAll(location, " ", "+")
	}
	url += "?format=3&m"

	resp, err := httpClient.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch weather data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch weather data, status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	report := strings.TrimSpace(string(body))
	if report == "" {
		return "", errors.New("no weather data received")
	}

	return report, nil
}
