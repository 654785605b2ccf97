package render

const declarationsTemplate = `CREATE OR REPLACE PACKAGE {{ .Package }} IS
  PROCEDURE create_{{ .Table }}{{ params .Create }};

  PROCEDURE update_{{ .Table }}{{ params .Update }};

  PROCEDURE delete_{{ .Table }}{{ params .Delete }};

  PROCEDURE gid_{{ .Table }}_by_id{{ params .GetByID }};

  PROCEDURE get_all_{{ .Table }};

END {{ .Package }};
`

const definitionsTemplate = `CREATE OR REPLACE PACKAGE BODY {{ .Package }} IS
  PROCEDURE create_{{ .Table }}{{ params .Create }} IS
  BEGIN
    INSERT INTO {{ .Table }} ({{ join .InsertColumns ", " }})
    VALUES ({{ join (names .Create) ", " }});
    COMMIT;
  END create_{{ .Table }};

  PROCEDURE update_{{ .Table }}{{ params .Update }} IS
  BEGIN
    UPDATE {{ .Table }} SET
      {{ join .Assignments ",\n      " }}
    WHERE {{ .Key }} = {{ .UpdateKey }};
    COMMIT;
  END update_{{ .Table }};

  PROCEDURE delete_{{ .Table }}{{ params .Delete }} IS
  BEGIN
    DELETE FROM {{ .Table }} WHERE {{ .Key }} = {{ .DeleteKey }};
    COMMIT;
  END delete_{{ .Table }};

  PROCEDURE gid_{{ .Table }}_by_id{{ params .GetByID }} IS
    c_gid SYS_REFCURSOR;
  BEGIN
    OPEN c_gid FOR SELECT * FROM {{ .Table }} WHERE {{ .Key }} = {{ .GetByIDKey }};
    DBMS_SQL.RETURN_RESULT(c_gid);
  END gid_{{ .Table }}_by_id;

  PROCEDURE get_all_{{ .Table }} IS
    c_g_all SYS_REFCURSOR;
  BEGIN
    OPEN c_g_all FOR SELECT * FROM {{ .Table }};
    DBMS_SQL.RETURN_RESULT(c_g_all);
  END get_all_{{ .Table }};

END {{ .Package }};
`
