// Package api содержит HTTP-клиент для взаимодействия с сервером.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя удобные методы для отправки JSON-запросов (POST/GET)
// с авторизацией через Bearer токен.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается ошибка с текстом тела ответа
//     (если тело пустое — используется res.Status).
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (TLS сертификат не проверяется).
// Это допустимо только для разработки и локального окружения. Для production следует
// включать проверку сертификата и/или использовать доверенный CA/сертификаты.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client реализует HTTP-клиент для общения с сервером.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://127.0.0.1:8080").
//
// Поведение:
//   - обрезает завершающий "/" у baseURL;
//   - создаёт http.Client с таймаутом 10 секунд;
//
// ВНИМАНИЕ: InsecureSkipVerify=true отключает проверку сертификата и делает TLS
// уязвимым для MITM. Использовать только для локальной разработки/тестов.
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// readAPIErrorBody читает тело ответа сервера и возвращает ошибку с текстом тела.
//
// Используется в случае HTTP-ошибок (не 2xx).
func readAPIErrorBody(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// decodeJSONOrOK декодирует JSON из r в resp.
//
// Если resp == nil — функция ничего не делает и возвращает nil.
// Если тело ответа пустое и json.Decoder вернул io.EOF,
// это НЕ считается ошибкой и возвращается nil.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// PostJSON выполняет POST-запрос к серверу, сериализуя req в JSON.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/v1/login").
//   - req: объект для сериализации в JSON. Если req == nil, тело не отправляется
//     и Content-Type не устанавливается.
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: bearer токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// GetJSON выполняет GET-запрос к серверу и (опционально) декодирует JSON-ответ.
//
// Параметры:
//   - path: путь относительно baseURL (например: "/v1/user").
//   - resp: указатель на структуру/объект для декодирования JSON-ответа.
//     Если resp == nil, тело ответа не декодируется.
//   - authToken: bearer токен. Если непустой, добавляется заголовок:
//     Authorization: Bearer <token>.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	r, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIErrorBody(res)
	}

	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}
